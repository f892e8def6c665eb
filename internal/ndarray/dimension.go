package ndarray

import "fmt"

// Dimension is a rank tag carried by every Ndarray. D1..D4 fix the rank in the type;
// DN carries a dynamic rank for the general case.
type Dimension interface {
	Rank() int
}

// D1 tags one-dimensional arrays.
type D1 struct{}

// D2 tags two-dimensional arrays.
type D2 struct{}

// D3 tags three-dimensional arrays.
type D3 struct{}

// D4 tags four-dimensional arrays.
type D4 struct{}

// DN tags arrays whose rank is only known at run time.
type DN struct {
	rank int
}

// Rank returns 1.
func (D1) Rank() int { return 1 }

// Rank returns 2.
func (D2) Rank() int { return 2 }

// Rank returns 3.
func (D3) Rank() int { return 3 }

// Rank returns 4.
func (D4) Rank() int { return 4 }

// Rank returns the dynamic rank.
func (d DN) Rank() int { return d.rank }

// NewDN returns a dynamic-rank tag.
func NewDN(rank int) DN {
	return DN{rank: rank}
}

// DimensionOf builds the tag D for an array of the given rank.
// Fixed-rank tags must match rank; DN adopts it.
func DimensionOf[D Dimension](rank int) (D, error) {
	var dim D
	if dn, ok := any(&dim).(*DN); ok {
		if rank < 1 {
			return dim, fmt.Errorf("rank %d: %w", rank, ErrInvalidShape)
		}
		*dn = DN{rank: rank}
		return dim, nil
	}
	if dim.Rank() != rank {
		return dim, fmt.Errorf("dimension (%d) != %d shape size: %w", dim.Rank(), rank, ErrDimensionMismatch)
	}
	return dim, nil
}

// requireDimension checks that dim agrees with the shape length.
func requireDimension(dim Dimension, shapeSize int) error {
	if dim.Rank() != shapeSize {
		return fmt.Errorf("dimension (%d) != %d shape size: %w", dim.Rank(), shapeSize, ErrDimensionMismatch)
	}
	return nil
}
