package signal

import "github.com/corewidgets/uicore/identity"

// Cast adapts a Signal[T] into a Signal[U] via explicit conversions in both
// directions. Capability and id pass through unchanged.
func Cast[T, U any](s Signal[T], toU func(T) U, toT func(U) T) Signal[U] {
	return &castSignal[T, U]{inner: s, toU: toU, toT: toT}
}

type castSignal[T, U any] struct {
	Base[U]
	inner Signal[T]
	toU   func(T) U
	toT   func(U) T
}

func (c *castSignal[T, U]) Capability() Capability { return c.inner.Capability() }
func (c *castSignal[T, U]) HasValue() bool         { return c.inner.HasValue() }
func (c *castSignal[T, U]) ValueID() identity.ID   { return c.inner.ValueID() }
func (c *castSignal[T, U]) Read() U                { return c.toU(c.inner.Read()) }
func (c *castSignal[T, U]) MoveOut() U             { return c.toU(c.inner.MoveOut()) }
func (c *castSignal[T, U]) ReadyToWrite() bool     { return c.inner.ReadyToWrite() }
func (c *castSignal[T, U]) Write(v U) (identity.ID, error) {
	return c.inner.Write(c.toT(v))
}
func (c *castSignal[T, U]) Clear()              { c.inner.Clear() }
func (c *castSignal[T, U]) Invalidate(e error) bool { return c.inner.Invalidate(e) }
func (c *castSignal[T, U]) IsInvalidated() bool { return c.inner.IsInvalidated() }

// AddDefault yields primary's value when present, else fallback's. Id is
// the combination of "did primary have a value" with whichever operand's id
// was used; reading capability is the weaker of the two, writing is
// primary's alone.
func AddDefault[T any](primary, fallback Signal[T]) Signal[T] {
	return &addDefaultSignal[T]{primary: primary, fallback: fallback}
}

type addDefaultSignal[T any] struct {
	Base[T]
	primary, fallback Signal[T]
}

func (a *addDefaultSignal[T]) Capability() Capability {
	p, f := a.primary.Capability(), a.fallback.Capability()
	return Capability{Reading: minReading(p.Reading, f.Reading), Writing: p.Writing}
}
func (a *addDefaultSignal[T]) HasValue() bool {
	return a.primary.HasValue() || a.fallback.HasValue()
}
func (a *addDefaultSignal[T]) ValueID() identity.ID {
	if a.primary.HasValue() {
		return identity.Combine(identity.Value(true), a.primary.ValueID())
	}
	return identity.Combine(identity.Value(false), a.fallback.ValueID())
}
func (a *addDefaultSignal[T]) Read() T {
	if a.primary.HasValue() {
		return a.primary.Read()
	}
	return a.fallback.Read()
}
func (a *addDefaultSignal[T]) ReadyToWrite() bool { return a.primary.ReadyToWrite() }
func (a *addDefaultSignal[T]) Write(v T) (identity.ID, error) {
	return a.primary.Write(v)
}
func (a *addDefaultSignal[T]) Clear() { a.primary.Clear() }

// Mask suppresses the value entirely (has_value becomes false, id becomes
// Null) whenever flag() is false. Capability is unchanged.
func Mask[T any](s Signal[T], flag func() bool) Signal[T] {
	return &maskSignal[T]{inner: s, flag: flag}
}

type maskSignal[T any] struct {
	Base[T]
	inner Signal[T]
	flag  func() bool
}

func (m *maskSignal[T]) Capability() Capability { return m.inner.Capability() }
func (m *maskSignal[T]) HasValue() bool         { return m.flag() && m.inner.HasValue() }
func (m *maskSignal[T]) ValueID() identity.ID {
	if !m.flag() {
		return identity.Null
	}
	return m.inner.ValueID()
}
func (m *maskSignal[T]) Read() T                { return m.inner.Read() }
func (m *maskSignal[T]) ReadyToWrite() bool     { return m.inner.ReadyToWrite() }
func (m *maskSignal[T]) Write(v T) (identity.ID, error) { return m.inner.Write(v) }
func (m *maskSignal[T]) Clear()                 { m.inner.Clear() }

// MaskWrites passes reads through unchanged but drops write capability to
// Unwritable whenever flag() is true.
func MaskWrites[T any](s Signal[T], flag func() bool) Signal[T] {
	return &maskWritesSignal[T]{inner: s, flag: flag}
}

type maskWritesSignal[T any] struct {
	Base[T]
	inner Signal[T]
	flag  func() bool
}

func (m *maskWritesSignal[T]) Capability() Capability {
	c := m.inner.Capability()
	if m.flag() {
		c.Writing = Unwritable
	}
	return c
}
func (m *maskWritesSignal[T]) HasValue() bool       { return m.inner.HasValue() }
func (m *maskWritesSignal[T]) ValueID() identity.ID { return m.inner.ValueID() }
func (m *maskWritesSignal[T]) Read() T              { return m.inner.Read() }
func (m *maskWritesSignal[T]) ReadyToWrite() bool {
	return !m.flag() && m.inner.ReadyToWrite()
}
func (m *maskWritesSignal[T]) Write(v T) (identity.ID, error) {
	if m.flag() {
		return identity.Null, nil
	}
	return m.inner.Write(v)
}

// MaskReads passes writes through unchanged but suppresses the value
// (drops reading to Unreadable) whenever flag() is true.
func MaskReads[T any](s Signal[T], flag func() bool) Signal[T] {
	return &maskReadsSignal[T]{inner: s, flag: flag}
}

type maskReadsSignal[T any] struct {
	Base[T]
	inner Signal[T]
	flag  func() bool
}

func (m *maskReadsSignal[T]) Capability() Capability {
	c := m.inner.Capability()
	if m.flag() {
		c.Reading = Unreadable
	}
	return c
}
func (m *maskReadsSignal[T]) HasValue() bool { return !m.flag() && m.inner.HasValue() }
func (m *maskReadsSignal[T]) ValueID() identity.ID {
	if m.flag() {
		return identity.Null
	}
	return m.inner.ValueID()
}
func (m *maskReadsSignal[T]) Read() T                { return m.inner.Read() }
func (m *maskReadsSignal[T]) ReadyToWrite() bool     { return m.inner.ReadyToWrite() }
func (m *maskReadsSignal[T]) Write(v T) (identity.ID, error) { return m.inner.Write(v) }
func (m *maskReadsSignal[T]) Clear()                 { m.inner.Clear() }

// SimplifyID passes the value through unchanged but replaces the id with
// make_id_by_reference(value) whenever a value is present.
func SimplifyID[T any](s Signal[T]) Signal[T] {
	return &simplifyIDSignal[T]{inner: s}
}

type simplifyIDSignal[T any] struct {
	Base[T]
	inner Signal[T]
}

func (s *simplifyIDSignal[T]) Capability() Capability { return s.inner.Capability() }
func (s *simplifyIDSignal[T]) HasValue() bool         { return s.inner.HasValue() }
func (s *simplifyIDSignal[T]) ValueID() identity.ID {
	if !s.inner.HasValue() {
		return identity.Null
	}
	v := s.inner.Read()
	return identity.ByReference(&v)
}
func (s *simplifyIDSignal[T]) Read() T                { return s.inner.Read() }
func (s *simplifyIDSignal[T]) ReadyToWrite() bool     { return s.inner.ReadyToWrite() }
func (s *simplifyIDSignal[T]) Write(v T) (identity.ID, error) { return s.inner.Write(v) }
func (s *simplifyIDSignal[T]) Clear()                 { s.inner.Clear() }

// MinimizeIDChanges passes the value through unchanged but only changes the
// advertised id when the value actually differs from the last observed
// value (requiring T comparable) — suppressing spurious invalidations from
// an inner signal whose id churns every call regardless of content.
func MinimizeIDChanges[T comparable](s Signal[T]) Signal[T] {
	return &minimizeIDSignal[T]{inner: s, id: identity.NewOpaque()}
}

type minimizeIDSignal[T comparable] struct {
	Base[T]
	inner    Signal[T]
	lastSeen T
	seen     bool
	id       identity.ID
}

func (m *minimizeIDSignal[T]) Capability() Capability { return m.inner.Capability() }
func (m *minimizeIDSignal[T]) HasValue() bool         { return m.inner.HasValue() }
func (m *minimizeIDSignal[T]) ValueID() identity.ID {
	if !m.inner.HasValue() {
		return identity.Null
	}
	cur := m.inner.Read()
	if !m.seen || cur != m.lastSeen {
		m.lastSeen = cur
		m.seen = true
		m.id = identity.NewOpaque()
	}
	return m.id
}
func (m *minimizeIDSignal[T]) Read() T                { return m.inner.Read() }
func (m *minimizeIDSignal[T]) ReadyToWrite() bool     { return m.inner.ReadyToWrite() }
func (m *minimizeIDSignal[T]) Write(v T) (identity.ID, error) { return m.inner.Write(v) }
func (m *minimizeIDSignal[T]) Clear()                 { m.inner.Clear() }

// HasValueOf returns a read-only bool signal reflecting s.HasValue().
func HasValueOf[T any](s Signal[T]) Signal[bool] {
	return &predicateSignal{read: s.HasValue}
}

// ReadyToWriteOf returns a read-only bool signal reflecting s.ReadyToWrite().
func ReadyToWriteOf[T any](s Signal[T]) Signal[bool] {
	return &predicateSignal{read: s.ReadyToWrite}
}

type predicateSignal struct {
	Base[bool]
	read func() bool
}

func (p *predicateSignal) Capability() Capability { return Capability{Reading: Readable} }
func (p *predicateSignal) HasValue() bool         { return true }
func (p *predicateSignal) ValueID() identity.ID   { return identity.Value(p.read()) }
func (p *predicateSignal) Read() bool             { return p.read() }

// Optional models the presence/absence carrier that Unwrap projects.
type Optional[T any] struct {
	Valid bool
	Value T
}

// Unwrap projects Signal[Optional[T]] to Signal[T]: the value is inner's
// payload when Valid, the id is inner's id when present else Null. It
// drops to readable-only; Clear writes an invalid Optional back.
func Unwrap[T any](s Signal[Optional[T]]) Signal[T] {
	return &unwrapSignal[T]{inner: s}
}

type unwrapSignal[T any] struct {
	Base[T]
	inner Signal[Optional[T]]
}

func (u *unwrapSignal[T]) Capability() Capability {
	return Capability{Reading: minReading(Readable, u.inner.Capability().Reading)}
}
func (u *unwrapSignal[T]) HasValue() bool {
	return u.inner.HasValue() && u.inner.Read().Valid
}
func (u *unwrapSignal[T]) ValueID() identity.ID {
	if !u.HasValue() {
		return identity.Null
	}
	return u.inner.ValueID()
}
func (u *unwrapSignal[T]) Read() T { return u.inner.Read().Value }
func (u *unwrapSignal[T]) Clear()  { u.inner.Write(Optional[T]{}) }

// Move upgrades a Movable signal's reading tier to MoveActivated; it is a
// no-op on a signal that is not already Movable.
func Move[T any](s Signal[T]) Signal[T] {
	return &moveSignal[T]{inner: s}
}

type moveSignal[T any] struct {
	Base[T]
	inner Signal[T]
}

func (m *moveSignal[T]) Capability() Capability {
	c := m.inner.Capability()
	if c.Reading >= Movable {
		c.Reading = MoveActivated
	}
	return c
}
func (m *moveSignal[T]) HasValue() bool                { return m.inner.HasValue() }
func (m *moveSignal[T]) ValueID() identity.ID          { return m.inner.ValueID() }
func (m *moveSignal[T]) Read() T                       { return m.inner.Read() }
func (m *moveSignal[T]) MoveOut() T                    { return m.inner.MoveOut() }
func (m *moveSignal[T]) DestructiveRef() *T            { return m.inner.DestructiveRef() }
func (m *moveSignal[T]) ReadyToWrite() bool            { return m.inner.ReadyToWrite() }
func (m *moveSignal[T]) Write(v T) (identity.ID, error) { return m.inner.Write(v) }
func (m *moveSignal[T]) Clear()                        { m.inner.Clear() }

// FakeReadability adds a Readable tier to a write-only signal without ever
// actually producing a value.
func FakeReadability[T any](s Signal[T]) Signal[T] {
	return &fakeReadabilitySignal[T]{inner: s}
}

type fakeReadabilitySignal[T any] struct {
	Base[T]
	inner Signal[T]
}

func (f *fakeReadabilitySignal[T]) Capability() Capability {
	c := f.inner.Capability()
	c.Reading = maxReading(c.Reading, Readable)
	return c
}
func (f *fakeReadabilitySignal[T]) HasValue() bool                { return false }
func (f *fakeReadabilitySignal[T]) ValueID() identity.ID          { return identity.Null }
func (f *fakeReadabilitySignal[T]) ReadyToWrite() bool            { return f.inner.ReadyToWrite() }
func (f *fakeReadabilitySignal[T]) Write(v T) (identity.ID, error) { return f.inner.Write(v) }
func (f *fakeReadabilitySignal[T]) Clear()                        { f.inner.Clear() }

// FakeWritability adds a Writable tier to a read-only signal; writes are
// always reported not-ready (silently suppressed).
func FakeWritability[T any](s Signal[T]) Signal[T] {
	return &fakeWritabilitySignal[T]{inner: s}
}

type fakeWritabilitySignal[T any] struct {
	Base[T]
	inner Signal[T]
}

func (f *fakeWritabilitySignal[T]) Capability() Capability {
	c := f.inner.Capability()
	c.Writing = maxWriting(c.Writing, Writable)
	return c
}
func (f *fakeWritabilitySignal[T]) HasValue() bool       { return f.inner.HasValue() }
func (f *fakeWritabilitySignal[T]) ValueID() identity.ID { return f.inner.ValueID() }
func (f *fakeWritabilitySignal[T]) Read() T              { return f.inner.Read() }
func (f *fakeWritabilitySignal[T]) ReadyToWrite() bool   { return false }
