package datastructure

import (
	"encoding/json"
	"os"

	"github.com/lintang-b-s/assignx/pkg/util"

	"github.com/mitchellh/mapstructure"
)

// ProblemInput describes one analyzer run loaded from a json file:
// the cost matrix plus optional method and tunables. zero fields fall
// back to whatever the caller's flags say.
type ProblemInput struct {
	Matrix  [][]float64 `mapstructure:"matrix"`
	Method  string      `mapstructure:"method"`
	Epsilon float64     `mapstructure:"epsilon"`
	Delta   float64     `mapstructure:"delta"`
}

// ReadProblemFile decodes the file through a loose map so unknown keys
// are ignored rather than rejected.
func ReadProblemFile(path string) (*ProblemInput, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "read problem file %s", path)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "parse problem file %s", path)
	}

	input := &ProblemInput{}
	if err := mapstructure.Decode(raw, input); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode problem file %s", path)
	}

	if len(input.Matrix) == 0 {
		return nil, util.WrapErrorf(ErrEmptyMatrix, util.ErrBadParamInput,
			"problem file %s has no matrix", path)
	}
	return input, nil
}
