package signal

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/corewidgets/uicore/identity"
)

// Curve maps a normalized progress t in [0, 1] to an eased progress,
// t=0 mapping to 0 and t=1 mapping to 1.
type Curve interface {
	Value(t float64) float64
}

// CubicBezier is a curve defined by two control points, solved via
// Newton-Raphson the way CSS's cubic-bezier() timing function is defined.
type CubicBezier struct {
	x1, y1, x2, y2 float64
}

// NewCubicBezier builds a cubic-bezier curve from its two control points;
// the endpoints are implicitly (0,0) and (1,1).
func NewCubicBezier(x1, y1, x2, y2 float64) CubicBezier {
	return CubicBezier{x1: x1, y1: y1, x2: x2, y2: y2}
}

func bezierComponent(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierComponentDerivative(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// Value solves x(s) = t for s via Newton-Raphson, then evaluates y(s).
func (c CubicBezier) Value(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	s := t
	for i := 0; i < 8; i++ {
		x := bezierComponent(s, c.x1, c.x2) - t
		dx := bezierComponentDerivative(s, c.x1, c.x2)
		if math.Abs(dx) < 1e-6 {
			break
		}
		s -= x / dx
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}
	return bezierComponent(s, c.y1, c.y2)
}

// LinearCurve is the identity curve: Value(t) == t.
type LinearCurve struct{}

func (LinearCurve) Value(t float64) float64 { return t }

// AnimationHost lets a Smooth signal request to be polled again before its
// transition settles, and tells it what time it currently is.
type AnimationHost interface {
	RequestAnimationFrame()
	NowMillis() uint64
}

// smoothSignal interpolates towards src's target value over durationMS,
// restarting the transition from whatever value is currently displayed
// whenever src's target changes mid-flight.
type smoothSignal[T Numeric] struct {
	Base[T]
	host       AnimationHost
	src        Signal[T]
	curve      Curve
	durationMS float64

	haveTarget  bool
	lastTarget  T
	from        float64
	to          float64
	startMillis uint64
	settled     bool
}

// Smooth returns a signal that interpolates towards src's current value
// along curve over durationMS milliseconds, re-requesting animation frames
// from host while a transition is in flight.
func Smooth[T Numeric](host AnimationHost, src Signal[T], curve Curve, durationMS float64) Signal[T] {
	return &smoothSignal[T]{host: host, src: src, curve: curve, durationMS: durationMS, settled: true}
}

func (s *smoothSignal[T]) Capability() Capability { return Capability{Reading: Readable} }

func (s *smoothSignal[T]) HasValue() bool { return s.src.HasValue() }

func (s *smoothSignal[T]) update() float64 {
	target := s.src.Read()
	now := s.host.NowMillis()

	if !s.haveTarget || target != s.lastTarget {
		// Target changed: restart the transition from wherever we
		// currently are, not from the old target.
		s.from = s.currentValue(now)
		s.to = float64(target)
		s.startMillis = now
		s.haveTarget = true
		s.lastTarget = target
		s.settled = s.durationMS <= 0
	}

	if !s.settled {
		s.host.RequestAnimationFrame()
	}
	return s.currentValue(now)
}

func (s *smoothSignal[T]) currentValue(now uint64) float64 {
	if s.settled || s.durationMS <= 0 {
		return s.to
	}
	elapsed := float64(now - s.startMillis)
	if elapsed >= s.durationMS {
		s.settled = true
		return s.to
	}
	progress := s.curve.Value(elapsed / s.durationMS)
	return s.from + (s.to-s.from)*progress
}

func (s *smoothSignal[T]) ValueID() identity.ID {
	return identity.Combine(identity.Value("smooth"), s.src.ValueID())
}

func (s *smoothSignal[T]) Read() T {
	return T(s.update())
}

// springSignal is a Smooth variant driven by a physical spring rather than
// a fixed-duration curve, backed by harmonica's simulation.
type springSignal[T Numeric] struct {
	Base[T]
	host AnimationHost
	src  Signal[T]

	spring      harmonica.Spring
	haveState   bool
	pos, vel    float64
	target      float64
	lastMillis  uint64
	atRest      bool
}

// Spring returns a signal that tracks src's current value with a damped
// harmonic-oscillator response instead of a fixed-duration easing curve.
func Spring[T Numeric](host AnimationHost, src Signal[T], angularFrequency, damping float64) Signal[T] {
	return &springSignal[T]{
		host:   host,
		src:    src,
		spring: harmonica.NewSpring(harmonica.FPS(60), angularFrequency, damping),
		atRest: true,
	}
}

func (s *springSignal[T]) Capability() Capability { return Capability{Reading: Readable} }

func (s *springSignal[T]) HasValue() bool { return s.src.HasValue() }

func (s *springSignal[T]) ValueID() identity.ID {
	return identity.Combine(identity.Value("spring"), s.src.ValueID())
}

func (s *springSignal[T]) update() float64 {
	target := s.src.Read()
	now := s.host.NowMillis()

	if !s.haveState {
		s.pos = float64(target)
		s.target = float64(target)
		s.lastMillis = now
		s.haveState = true
		return s.pos
	}

	if float64(target) != s.target {
		s.target = float64(target)
		s.atRest = false
	}

	if s.atRest {
		return s.pos
	}

	dt := float64(now-s.lastMillis) / 1000
	s.lastMillis = now
	if dt <= 0 {
		s.host.RequestAnimationFrame()
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 1e-3 && math.Abs(s.vel) < 1e-3 {
		s.pos = s.target
		s.vel = 0
		s.atRest = true
	} else {
		s.host.RequestAnimationFrame()
	}
	return s.pos
}

func (s *springSignal[T]) Read() T { return T(s.update()) }
