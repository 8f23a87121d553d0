package types

type Pointi struct {
	X, Y int
}

type Pointf64 struct {
	X, Y float64
}

func (p Pointf64) Add(q Pointf64) Pointf64 {
	return Pointf64{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Pointf64) Sub(q Pointf64) Pointf64 {
	return Pointf64{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Pointf64) Mul(k float64) Pointf64 {
	return Pointf64{X: p.X * k, Y: p.Y * k}
}

type Recti struct {
	X, Y, W, H int
}

type Rectf64 struct {
	X, Y, W, H float64
}
