package sizecache

// Uniform is a Cache backed by a single item size. All queries are O(1).
type Uniform struct {
	Height float32
	n      int
}

// NewUniform constructs a Uniform cache with the given per-item height and
// item count.
func NewUniform(height float32, n int) (*Uniform, error) {
	u := &Uniform{Height: height}
	if err := u.Rebuild(n); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Uniform) Offset(i int) float32 {
	if i <= 0 {
		return 0
	}
	if i > u.n {
		i = u.n
	}
	return float32(i) * u.Height
}

func (u *Uniform) Size(i int) float32 {
	if i < 0 || i >= u.n {
		return 0
	}
	return u.Height
}

func (u *Uniform) IndexAt(y float32) int {
	if u.n == 0 {
		return 0
	}
	if y <= 0 {
		return 0
	}
	total := u.TotalSize()
	if y >= total {
		return u.n - 1
	}
	idx := int(y / u.Height)
	if idx < 0 {
		idx = 0
	}
	if idx >= u.n {
		idx = u.n - 1
	}
	return idx
}

func (u *Uniform) TotalSize() float32 {
	return float32(u.n) * u.Height
}

func (u *Uniform) Total() int {
	return u.n
}

// Rebuild validates the height and updates the item count. Rebuild is cheap
// for Uniform: no per-index work is required.
func (u *Uniform) Rebuild(n int) error {
	if n < 0 {
		n = 0
	}
	if n > 0 && !isValidSize(u.Height) {
		return &InvalidSizeError{Index: 0, Size: u.Height}
	}
	u.n = n
	return nil
}

func (u *Uniform) IsVariable() bool { return false }

var _ Cache = (*Uniform)(nil)
