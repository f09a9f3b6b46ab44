package fixture

//maybe:sentinel -1
type Code int

//maybe:sentinel -1, access=unchecked
type Ratio float64

//maybe:sentinel Point{-1, -1}, access=unchecked-deref
type Point struct{ X, Y int }

//maybe:sane
type Owned struct{ buf []byte }

func (o *Owned) Drop()           { o.buf = nil }
func (o *Owned) Clone() Owned    { return Owned{append([]byte(nil), o.buf...)} }
func (o *Owned) Swap(p *Owned)   { o.buf, p.buf = p.buf, o.buf }
func (o *Owned) Assign(p *Owned) { o.buf = append(o.buf[:0], p.buf...) }
