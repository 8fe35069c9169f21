package usecase

import (
	"os"
	"testing"

	"github.com/vasapolrittideah/academia-bot/shared/security"
)

func TestMain(m *testing.M) {
	security.Configure(security.Params{TimeCost: 1, MemoryCost: 8 * 1024, Parallelism: 1})
	os.Exit(m.Run())
}
