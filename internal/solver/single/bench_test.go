package single

import (
	"testing"

	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
)

func benchmarkSteps(b *testing.B, steps int, budget *float64) {
	opt := NewOptimizer(mixer.New(models.DefaultCatalog()))
	opts := Options{Substance: models.OGKush, MaxSteps: steps, Budget: budget}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := opt.FindOptimalMix(opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindOptimalMix3(b *testing.B) { benchmarkSteps(b, 3, nil) }
func BenchmarkFindOptimalMix4(b *testing.B) { benchmarkSteps(b, 4, nil) }
func BenchmarkFindOptimalMix5(b *testing.B) { benchmarkSteps(b, 5, nil) }

func BenchmarkFindOptimalMixBudget(b *testing.B) { benchmarkSteps(b, 4, ptr(25)) }
