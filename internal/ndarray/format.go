package ndarray

import (
	"fmt"
	"strings"
)

// String renders the array as nested brackets, e.g. [[1, 2], [3, 4]].
func (a *Ndarray[T, D]) String() string {
	var sb strings.Builder
	idx := make([]int, len(a.shape))
	a.format(&sb, idx, 0)
	return sb.String()
}

func (a *Ndarray[T, D]) format(sb *strings.Builder, idx []int, axis int) {
	sb.WriteByte('[')
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		idx[axis] = i
		if axis == len(a.shape)-1 {
			fmt.Fprint(sb, a.data.data[ElementOffset(a.offset, idx, a.strides)])
		} else {
			a.format(sb, idx, axis+1)
		}
	}
	sb.WriteByte(']')
}
