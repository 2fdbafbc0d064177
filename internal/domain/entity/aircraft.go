package entity

// Aircraft is a physical airframe. A capacity of zero or less means the
// aircraft has no usable seat map.
type Aircraft struct {
	ID         uint
	TailNumber string
	Model      string
	Capacity   int
}
