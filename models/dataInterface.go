package models

type Identifier interface {
	GetId() int
}

func (c EggCollection) GetId() int      { return c.ID }
func (s EggSetting) GetId() int         { return s.ID }
func (i Incubator) GetId() int          { return i.ID }
func (b IncubationBatch) GetId() int    { return b.ID }
func (f FertileEggCandling) GetId() int { return f.ID }
func (cl ClearEggCandling) GetId() int  { return cl.ID }
func (l LockdownBatch) GetId() int      { return l.ID }
func (h HatchingRecord) GetId() int     { return h.ID }
func (p PackagingBatch) GetId() int     { return p.ID }
func (s SaleRecord) GetId() int         { return s.ID }
func (a Alert) GetId() int              { return a.ID }
func (n Notification) GetId() int       { return n.ID }
func (u User) GetId() int               { return u.ID }
