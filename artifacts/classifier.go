package artifacts

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Classifier predicts a severity class index from a scaled feature vector.
type Classifier interface {
	Predict(features []float64) (int, error)
	NumFeatures() int
}

// LinearClassifier is a multinomial linear model exported to JSON at training
// time: one coefficient row and intercept per class. The predicted class is
// the argmax of W·x + b.
type LinearClassifier struct {
	Classes      []int       `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`

	weights *mat.Dense
	bias    *mat.VecDense
}

func (c *LinearClassifier) init() error {
	if len(c.Classes) == 0 {
		return errors.New("no classes")
	}
	if len(c.Coefficients) != len(c.Classes) {
		return fmt.Errorf("%d classes but %d coefficient rows", len(c.Classes), len(c.Coefficients))
	}
	if len(c.Intercepts) != len(c.Classes) {
		return fmt.Errorf("%d classes but %d intercepts", len(c.Classes), len(c.Intercepts))
	}

	cols := len(c.Coefficients[0])
	if cols == 0 {
		return errors.New("empty coefficient row")
	}

	data := make([]float64, 0, len(c.Coefficients)*cols)
	for i, row := range c.Coefficients {
		if len(row) != cols {
			return fmt.Errorf("coefficient row %d has %d entries, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	c.weights = mat.NewDense(len(c.Coefficients), cols, data)
	c.bias = mat.NewVecDense(len(c.Intercepts), c.Intercepts)
	return nil
}

func (c *LinearClassifier) NumFeatures() int {
	_, cols := c.weights.Dims()
	return cols
}

func (c *LinearClassifier) Predict(features []float64) (int, error) {
	if len(features) != c.NumFeatures() {
		return 0, fmt.Errorf("feature count mismatch: got %d, model expects %d", len(features), c.NumFeatures())
	}

	x := mat.NewVecDense(len(features), features)

	var scores mat.VecDense
	scores.MulVec(c.weights, x)
	scores.AddVec(&scores, c.bias)

	best := floats.MaxIdx(scores.RawVector().Data)
	return c.Classes[best], nil
}
