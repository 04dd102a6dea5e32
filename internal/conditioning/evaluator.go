package conditioning

import (
	"math"
	"math/big"
	"strconv"

	"github.com/2beens/kondisca/internal/conditioning/formula"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultFormulaCacheSize = 256

type parsedFormula struct {
	expr *formula.Expr
	err  error
}

// Evaluator evaluates metric formulas against composite data points.
// Parsed formulas are kept in an LRU cache, keyed by the formula text;
// parsing is deterministic so the cache never changes a result.
type Evaluator struct {
	cache        *lru.Cache[string, parsedFormula]
	onParseError func(src string, err error)
}

// NewEvaluator creates an evaluator with the given parse cache size.
// onParseError, if not nil, is called when a malformed formula is parsed;
// later lookups of the same text are served from the cache.
func NewEvaluator(cacheSize int, onParseError func(src string, err error)) *Evaluator {
	if cacheSize <= 0 {
		cacheSize = DefaultFormulaCacheSize
	}
	// lru.New only errors on non-positive size which we guard above
	cache, _ := lru.New[string, parsedFormula](cacheSize)
	return &Evaluator{
		cache:        cache,
		onParseError: onParseError,
	}
}

var defaultEvaluator = NewEvaluator(DefaultFormulaCacheSize, nil)

// Evaluate uses the package default evaluator.
func Evaluate(src string, dp CompositeDataPoint, reg *Registry) (float64, bool) {
	return defaultEvaluator.Evaluate(src, dp, reg)
}

// Evaluate computes the formula for a single data point. Metric names in
// the formula are resolved to IDs through the registry. The result is
// rounded to 2 decimals; false means "no value": a referenced value is
// missing or not numeric, the formula is malformed, or the result is not finite.
func (e *Evaluator) Evaluate(src string, dp CompositeDataPoint, reg *Registry) (float64, bool) {
	expr, ok := e.parse(src)
	if !ok || reg == nil {
		return 0, false
	}

	res, ok := expr.Eval(formula.ResolverFunc(func(name string) (float64, bool) {
		m, found := reg.ByName(name)
		if !found {
			return 0, false
		}
		v, found := dp.Values[m.ID]
		if !found {
			return 0, false
		}
		return v.Float()
	}))
	if !ok {
		return 0, false
	}
	return Round2(res), true
}

func (e *Evaluator) parse(src string) (*formula.Expr, bool) {
	if cached, ok := e.cache.Get(src); ok {
		return cached.expr, cached.err == nil
	}

	expr, err := formula.Parse(src)
	e.cache.Add(src, parsedFormula{expr: expr, err: err})
	if err != nil {
		log.Debugf("formula [%s] not parsable: %s", src, err)
		if e.onParseError != nil {
			e.onParseError(src, err)
		}
		return nil, false
	}
	return expr, true
}

// Round2 rounds to 2 decimal places the way JavaScript's toFixed(2) does:
// the exact binary value is rounded, halves away from zero. So 2.675, which
// is stored as 2.67499999..., becomes 2.67. Negative zero becomes 0.
func Round2(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	// 128 bits hold any float64 mantissa times 100 exactly
	scaled := new(big.Float).SetPrec(128).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, big.NewFloat(100))
	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(scaled, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	r, err := strconv.ParseFloat(n.String()+"e-2", 64)
	if err != nil {
		return x
	}
	if r == 0 {
		return 0
	}
	return math.Copysign(r, x)
}
