package bulletin

import (
	"context"
	"sort"
)

// fakeRepository is an in-memory Repository that counts the calls it receives.
type fakeRepository struct {
	nextID int64
	rows   map[int64]Snapshot
	calls  int
	err    error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[int64]Snapshot)}
}

func (f *fakeRepository) Insert(_ context.Context, b *Bulletin) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	id := f.nextID
	snap := b.Snapshot()
	snap.BulletinID = &id
	f.rows[id] = snap
	return id, nil
}

func (f *fakeRepository) Update(_ context.Context, b *Bulletin) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	id := *b.BulletinID()
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	f.rows[id] = b.Snapshot()
	return 1, nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int64) (*Bulletin, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snap, ok := f.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return fromSnapshot(snap), nil
}

func (f *fakeRepository) GetByCategory(ctx context.Context, category string) (*Bulletin, error) {
	list, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		if b.Category() == category {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) List(_ context.Context) ([]*Bulletin, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var list []*Bulletin
	for _, id := range ids {
		list = append(list, fromSnapshot(f.rows[id]))
	}
	return list, nil
}

func fromSnapshot(s Snapshot) *Bulletin {
	id := *s.BulletinID
	return &Bulletin{
		id:        &id,
		userID:    s.UserID,
		category:  s.Category,
		message:   s.Message,
		timestamp: s.Timestamp,
	}
}
