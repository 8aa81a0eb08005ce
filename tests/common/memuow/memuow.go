//go:build unit

// Package memuow is an in-memory shared.UnitOfWork. Within restores the
// pre-call state when fn fails, so tests can observe rollback behaviour.
package memuow

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/role"
	"car-rental/internal/domain/user"
	"car-rental/internal/infra"
	"car-rental/internal/usecase/shared"
)

type state struct {
	roles    map[int64]role.Role
	users    map[int64]user.User
	cars     map[int64]car.Car
	bookings map[int64]booking.Booking
	payments map[int64]payment.Payment
	nextID   int64
}

func (s state) clone() state {
	return state{
		roles:    cloneMap(s.roles),
		users:    cloneMap(s.users),
		cars:     cloneMap(s.cars),
		bookings: cloneMap(s.bookings),
		payments: cloneMap(s.payments),
		nextID:   s.nextID,
	}
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Store struct {
	mu sync.Mutex
	st state

	Commits   int
	Rollbacks int

	// Hooks let tests inject faults or pauses into single statements.
	SetAvailabilityErr error
	ExpiredCarIDsErr   error
	ReleaseErr         map[int64]error
	BeforeExpired      func()
}

func New() *Store {
	return &Store{st: state{
		roles:    map[int64]role.Role{},
		users:    map[int64]user.User{},
		cars:     map[int64]car.Car{},
		bookings: map[int64]booking.Booking{},
		payments: map[int64]payment.Payment{},
	}}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

// WithDB locks per statement, like autocommit.
func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &memTx{s: s, lockPerCall: true})
}

// Seed helpers assign ids the same way inserts do.

func (s *Store) SeedRole(r role.Role) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id(r.ID)
	s.st.roles[r.ID] = r
	return r.ID
}

func (s *Store) SeedUser(u *user.User) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(u.ID())
	u.SetID(id)
	s.st.users[id] = *u
	return id
}

func (s *Store) SeedCar(c car.Car) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id(c.ID)
	s.st.cars[c.ID] = c
	return c.ID
}

func (s *Store) SeedBooking(b booking.Booking) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.id(b.ID)
	s.st.bookings[b.ID] = b
	return b.ID
}

func (s *Store) Role(id int64) (role.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.roles[id]
	return r, ok
}

func (s *Store) User(id int64) (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	return u, ok
}

func (s *Store) Car(id int64) (car.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.cars[id]
	return c, ok
}

func (s *Store) Booking(id int64) (booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b, ok
}

func (s *Store) Payments() []payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]payment.Payment, 0, len(s.st.payments))
	for _, p := range s.st.payments {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b payment.Payment) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (s *Store) id(requested int64) int64 {
	if requested > 0 {
		if requested > s.st.nextID {
			s.st.nextID = requested
		}
		return requested
	}
	s.st.nextID++
	return s.st.nextID
}

type memTx struct {
	s           *Store
	lockPerCall bool
}

func (t *memTx) lock() func() {
	if !t.lockPerCall {
		return func() {}
	}
	t.s.mu.Lock()
	return t.s.mu.Unlock
}

func (t *memTx) Roles() shared.RoleRepository       { return roleRepo{t} }
func (t *memTx) Users() shared.UserRepository       { return userRepo{t} }
func (t *memTx) Cars() shared.CarRepository         { return carRepo{t} }
func (t *memTx) Bookings() shared.BookingRepository { return bookingRepo{t} }
func (t *memTx) Payments() shared.PaymentRepository { return paymentRepo{t} }

func duplicate(msg string) error  { return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey) }
func foreignKey(msg string) error { return infra.WrapRepoErr(msg, nil, infra.KindForeignKeyViolated) }

type roleRepo struct{ t *memTx }

func (r roleRepo) Create(_ context.Context, rl *role.Role) (int64, error) {
	defer r.t.lock()()
	st := &r.t.s.st
	for _, existing := range st.roles {
		if existing.Name == rl.Name {
			return 0, duplicate("role name taken")
		}
	}
	cp := *rl
	cp.ID = r.t.s.id(0)
	st.roles[cp.ID] = cp
	return cp.ID, nil
}

func (r roleRepo) Update(_ context.Context, rl *role.Role) error {
	defer r.t.lock()()
	st := &r.t.s.st
	if _, ok := st.roles[rl.ID]; !ok {
		return infra.NotFound("role not found")
	}
	for id, existing := range st.roles {
		if id != rl.ID && existing.Name == rl.Name {
			return duplicate("role name taken")
		}
	}
	st.roles[rl.ID] = *rl
	return nil
}

func (r roleRepo) Delete(_ context.Context, id int64) error {
	defer r.t.lock()()
	st := &r.t.s.st
	if _, ok := st.roles[id]; !ok {
		return infra.NotFound("role not found")
	}
	for _, u := range st.users {
		if u.RoleID() == id {
			return foreignKey("role referenced by users")
		}
	}
	delete(st.roles, id)
	return nil
}

type userRepo struct{ t *memTx }

func (r userRepo) checkUnique(u *user.User) error {
	for id, existing := range r.t.s.st.users {
		if id == u.ID() {
			continue
		}
		if existing.Username() == u.Username() || existing.Email() == u.Email() {
			return duplicate("username or email taken")
		}
	}
	if _, ok := r.t.s.st.roles[u.RoleID()]; !ok {
		return foreignKey("role does not exist")
	}
	return nil
}

func (r userRepo) Create(_ context.Context, u *user.User) (int64, error) {
	defer r.t.lock()()
	if err := r.checkUnique(u); err != nil {
		return 0, err
	}
	cp := *u
	id := r.t.s.id(0)
	cp.SetID(id)
	r.t.s.st.users[id] = cp
	return id, nil
}

func (r userRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	defer r.t.lock()()
	u, ok := r.t.s.st.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return &u, nil
}

func (r userRepo) Update(_ context.Context, u *user.User) error {
	defer r.t.lock()()
	if _, ok := r.t.s.st.users[u.ID()]; !ok {
		return infra.NotFound("user not found")
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}
	r.t.s.st.users[u.ID()] = *u
	return nil
}

func (r userRepo) Delete(_ context.Context, id int64) error {
	defer r.t.lock()()
	st := &r.t.s.st
	if _, ok := st.users[id]; !ok {
		return infra.NotFound("user not found")
	}
	for _, b := range st.bookings {
		if b.UserID == id {
			return foreignKey("user referenced by bookings")
		}
	}
	delete(st.users, id)
	return nil
}

type carRepo struct{ t *memTx }

func (r carRepo) Create(_ context.Context, c *car.Car) (int64, error) {
	defer r.t.lock()()
	cp := *c
	cp.ID = r.t.s.id(0)
	r.t.s.st.cars[cp.ID] = cp
	return cp.ID, nil
}

func (r carRepo) Update(_ context.Context, c *car.Car) error {
	defer r.t.lock()()
	existing, ok := r.t.s.st.cars[c.ID]
	if !ok {
		return infra.NotFound("car not found")
	}
	c.AvailabilityStatus = existing.AvailabilityStatus
	r.t.s.st.cars[c.ID] = *c
	return nil
}

func (r carRepo) Delete(_ context.Context, id int64) error {
	defer r.t.lock()()
	st := &r.t.s.st
	if _, ok := st.cars[id]; !ok {
		return infra.NotFound("car not found")
	}
	for _, b := range st.bookings {
		if b.CarID == id {
			return foreignKey("car referenced by bookings")
		}
	}
	delete(st.cars, id)
	return nil
}

func (r carRepo) SetAvailability(_ context.Context, id int64, available bool) error {
	defer r.t.lock()()
	if r.t.s.SetAvailabilityErr != nil {
		return r.t.s.SetAvailabilityErr
	}
	c, ok := r.t.s.st.cars[id]
	if !ok {
		return infra.NotFound("car not found")
	}
	c.AvailabilityStatus = available
	r.t.s.st.cars[id] = c
	return nil
}

func (r carRepo) ReleaseIfIdle(_ context.Context, id int64, now time.Time) (bool, error) {
	defer r.t.lock()()
	if err := r.t.s.ReleaseErr[id]; err != nil {
		return false, err
	}
	st := &r.t.s.st
	c, ok := st.cars[id]
	if !ok || c.AvailabilityStatus {
		return false, nil
	}
	for _, b := range st.bookings {
		if b.CarID == id && b.IsConfirmed() && !b.EndDate.Before(now) {
			return false, nil
		}
	}
	c.AvailabilityStatus = true
	st.cars[id] = c
	return true, nil
}

type bookingRepo struct{ t *memTx }

func (r bookingRepo) checkRefs(b *booking.Booking) error {
	st := &r.t.s.st
	if _, ok := st.users[b.UserID]; !ok {
		return foreignKey("user does not exist")
	}
	if _, ok := st.cars[b.CarID]; !ok {
		return foreignKey("car does not exist")
	}
	return nil
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	defer r.t.lock()()
	if err := r.checkRefs(b); err != nil {
		return 0, err
	}
	cp := *b
	cp.ID = r.t.s.id(0)
	r.t.s.st.bookings[cp.ID] = cp
	return cp.ID, nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	defer r.t.lock()()
	existing, ok := r.t.s.st.bookings[b.ID]
	if !ok {
		return infra.NotFound("booking not found")
	}
	if err := r.checkRefs(b); err != nil {
		return err
	}
	b.Status = existing.Status
	r.t.s.st.bookings[b.ID] = *b
	return nil
}

func (r bookingRepo) Delete(_ context.Context, id int64) error {
	defer r.t.lock()()
	st := &r.t.s.st
	if _, ok := st.bookings[id]; !ok {
		return infra.NotFound("booking not found")
	}
	delete(st.bookings, id)
	for pid, p := range st.payments {
		if p.BookingID == id {
			delete(st.payments, pid)
		}
	}
	return nil
}

func (r bookingRepo) FindByIDForUpdate(_ context.Context, id int64) (*booking.Booking, error) {
	defer r.t.lock()()
	b, ok := r.t.s.st.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return &b, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, id int64, status booking.Status) error {
	defer r.t.lock()()
	b, ok := r.t.s.st.bookings[id]
	if !ok {
		return infra.NotFound("booking not found")
	}
	b.Status = status
	r.t.s.st.bookings[id] = b
	return nil
}

func (r bookingRepo) ExpiredCarIDs(_ context.Context, now time.Time) ([]int64, error) {
	if r.t.s.BeforeExpired != nil {
		r.t.s.BeforeExpired()
	}
	defer r.t.lock()()
	if r.t.s.ExpiredCarIDsErr != nil {
		return nil, r.t.s.ExpiredCarIDsErr
	}
	var ids []int64
	for _, b := range r.t.s.st.bookings {
		if b.EndDate.Before(now) && !slices.Contains(ids, b.CarID) {
			ids = append(ids, b.CarID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

type paymentRepo struct{ t *memTx }

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) (int64, error) {
	defer r.t.lock()()
	st := &r.t.s.st
	if _, ok := st.bookings[p.BookingID]; !ok {
		return 0, foreignKey("booking does not exist")
	}
	for _, existing := range st.payments {
		if existing.BookingID == p.BookingID {
			return 0, duplicate("booking already paid")
		}
	}
	cp := *p
	cp.ID = r.t.s.id(0)
	st.payments[cp.ID] = cp
	return cp.ID, nil
}
