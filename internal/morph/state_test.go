package morph_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shapemorph/internal/morph"
)

var defaultParams = morph.Params{
	MorphSpeed:    0.005,
	HoldIncrement: 0.01,
	HoldDuration:  2,
	RotationStep:  0.05,
}

var _ = Describe("State", func() {
	var s *morph.State

	BeforeEach(func() {
		s = morph.New(defaultParams)
	})

	It("starts holding at the sphere", func() {
		Expect(s.Factor).To(Equal(0.0))
		Expect(s.Forward).To(BeFalse())
		Expect(s.Holding()).To(BeTrue())
	})

	It("keeps the factor inside [0, 1] over many cycles", func() {
		for i := 0; i < 10000; i++ {
			s.Tick()
			Expect(s.Factor).To(BeNumerically(">=", 0))
			Expect(s.Factor).To(BeNumerically("<=", 1))
		}
	})

	It("flips exactly once per hold, and only after the hold duration", func() {
		flips := 0
		prevForward := s.Forward
		holdBeforeFlip := 0.0
		for i := 0; i < 300; i++ {
			holdBeforeFlip = s.Hold
			s.Tick()
			if s.Forward != prevForward {
				flips++
				Expect(holdBeforeFlip + defaultParams.HoldIncrement).To(BeNumerically(">=", defaultParams.HoldDuration))
				Expect(s.Factor).To(Equal(0.0))
				prevForward = s.Forward
			}
		}
		Expect(flips).To(Equal(1))
		Expect(s.Forward).To(BeTrue())
	})

	It("does not jump when a hold ends", func() {
		prev := s.Factor
		for i := 0; i < 2000; i++ {
			s.Tick()
			Expect(math.Abs(s.Factor - prev)).To(BeNumerically("<=", defaultParams.MorphSpeed+1e-12))
			prev = s.Factor
		}
	})

	It("reaches the torus and holds there", func() {
		for s.Factor < 1 {
			s.Tick()
		}
		Expect(s.Factor).To(Equal(1.0))
		Expect(s.Holding()).To(BeTrue())
		Expect(s.Forward).To(BeTrue())

		for s.Forward {
			s.Tick()
			Expect(s.Factor).To(Equal(1.0))
		}
		s.Tick()
		Expect(s.Factor).To(BeNumerically("<", 1))
	})

	It("only accumulates hold time at an endpoint", func() {
		for s.Factor == 0 {
			s.Tick()
		}
		Expect(s.Hold).To(Equal(0.0))
		for i := 0; i < 50; i++ {
			s.Tick()
			Expect(s.Holding()).To(BeFalse())
			Expect(s.Hold).To(Equal(0.0))
		}
	})

	It("wraps the rotation phase and counts steps", func() {
		for i := 0; i < 1000; i++ {
			s.Tick()
			Expect(s.Phase).To(BeNumerically(">=", 0))
			Expect(s.Phase).To(BeNumerically("<", 2*math.Pi))
		}
		Expect(s.Step).To(Equal(1000))
		Expect(s.Phase).To(BeNumerically("~", math.Mod(1000*0.05, 2*math.Pi), 1e-9))
	})

	It("resets to the initial hold", func() {
		for i := 0; i < 500; i++ {
			s.Tick()
		}
		s.Reset()
		Expect(s.Snapshot()).To(Equal(morph.Sample{}))
		Expect(s.Params()).To(Equal(defaultParams))
	})

	DescribeTable("hold length before the first flip",
		func(increment, duration float64, expected int) {
			p := defaultParams
			p.HoldIncrement, p.HoldDuration = increment, duration
			st := morph.New(p)
			ticks := 0
			for !st.Forward {
				st.Tick()
				ticks++
			}
			Expect(ticks).To(Equal(expected))
		},
		Entry("one-frame hold", 1.0, 1.0, 1),
		Entry("exact binary steps", 0.25, 1.0, 4),
		Entry("ten frames", 0.5, 5.0, 10),
	)
})
