package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/assignx/pkg/util"
)

/*
matrix file format (bzip2-compressed text):

	n
	c(0,0) c(0,1) ... c(0,n-1)
	...
	c(n-1,0) ... c(n-1,n-1)

values are written with strconv.FormatFloat 'f' and full precision so a
write/read round trip is exact.
*/

func (m *Matrix) WriteMatrixFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d\n", m.n)

	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			vF := strconv.FormatFloat(m.data[i*m.n+j], 'f', -1, 64)
			fmt.Fprintf(w, "%s", vF)
			if j < m.n-1 {
				fmt.Fprintf(w, " ")
			}
		}
		fmt.Fprintf(w, "\n")
	}

	return w.Flush()
}

func fields(s string) []string {

	return strings.Fields(s)
}

func ReadMatrixFile(filename string) (*Matrix, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)

	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	tokens := fields(line)
	if len(tokens) != 1 {
		return nil, util.WrapErrorf(ErrNonSquareMatrix, util.ErrBadParamInput,
			"matrix header must be a single dimension, got %q", line)
	}

	n, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"invalid matrix dimension %q", tokens[0])
	}
	if n <= 0 {
		return nil, util.WrapErrorf(ErrEmptyMatrix, util.ErrBadParamInput,
			"matrix dimension must be positive, got %d", n)
	}

	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		rowLine, err := util.ReadLine(br)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput,
				"matrix row %d is missing", i)
		}
		tokens = fields(rowLine)
		if len(tokens) != n {
			return nil, util.WrapErrorf(ErrNonSquareMatrix, util.ErrBadParamInput,
				"row %d has %d columns, want %d", i, len(tokens), n)
		}
		for j, token := range tokens {
			v, err := util.StringToFloat64(token)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput,
					"invalid value at position (%d, %d)", i, j)
			}
			if !isFinite(v) {
				return nil, util.WrapErrorf(ErrNonFiniteValue, util.ErrBadParamInput,
					"non-finite cost at (%d, %d)", i, j)
			}
			m.data[i*n+j] = v
		}
	}

	return m, nil
}
