package convert

import (
	"context"

	"github.com/erraggy/casetools/formatter"
	"github.com/erraggy/casetools/tokenizer"
	"golang.org/x/sync/errgroup"
)

// batchSize is the number of inputs a worker converts between context checks.
const batchSize = 256

// ConvertAll converts every input to convention c using a bounded group of
// workers (see WithConcurrency). Results keep the order of inputs. If ctx is
// cancelled before all inputs are converted, ConvertAll returns ctx.Err().
func ConvertAll(ctx context.Context, inputs []string, c formatter.Convention, opts ...Option) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ctx.Err()
	}

	cfg := applyOptions(opts)
	table := cfg.acronyms()
	results := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers((len(inputs) + batchSize - 1) / batchSize))

	for lo := 0; lo < len(inputs); lo += batchSize {
		hi := min(lo+batchSize, len(inputs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%32 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				results[i] = formatter.Format(tokenizer.Tokenize(inputs[i]), c, table)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
