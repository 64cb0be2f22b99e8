package engine_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/engine"
	"github.com/san-kum/isoline/internal/field"
	"gonum.org/v1/gonum/spatial/r2"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.View.Width = 160
	cfg.View.Height = 160
	cfg.Grid.Spacing = 8
	cfg.Sources.Count = 1
	cfg.Sources.MinRadius = 20
	cfg.Sources.MaxRadius = 20
	cfg.Sources.MaxSpeed = 2
	return cfg
}

type counter struct {
	frames int
}

func (c *counter) Name() string         { return "frames" }
func (c *counter) Observe(engine.Frame) { c.frames++ }
func (c *counter) Value() float64       { return float64(c.frames) }
func (c *counter) Reset()               { c.frames = 0 }

var _ = Describe("Engine", func() {
	var (
		cfg    *config.Config
		source field.PointSource
	)

	BeforeEach(func() {
		cfg = smallConfig()
		source = field.PointSource{
			Position: r2.Vec{X: 80, Y: 80},
			Velocity: r2.Vec{X: 3, Y: -2},
			Radius:   20,
		}
	})

	Describe("construction", func() {
		It("rejects an invalid config", func() {
			cfg.Grid.Spacing = 0
			_, err := engine.New(cfg)
			Expect(errors.Is(err, config.ErrInvalidConfig)).To(BeTrue())
		})

		It("spawns the configured number of sources", func() {
			cfg.Sources.Count = 5
			eng, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.Sources()).To(HaveLen(5))
		})

		It("is deterministic for a fixed seed", func() {
			a, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Sources()).To(Equal(b.Sources()))
		})

		It("sizes the grid from the view and spacing", func() {
			eng, err := engine.NewWithSources(cfg, []field.PointSource{source})
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.Tracer().Grid().Cols()).To(Equal(20))
			Expect(eng.Tracer().Grid().Rows()).To(Equal(20))
		})
	})

	Describe("a frame", func() {
		var eng *engine.Engine

		BeforeEach(func() {
			var err error
			eng, err = engine.NewWithSources(cfg, []field.PointSource{source})
			Expect(err).NotTo(HaveOccurred())
		})

		It("moves the sources by their velocity", func() {
			f := eng.Step()
			Expect(f.Index).To(Equal(1))
			Expect(f.Sources[0].Position).To(Equal(r2.Vec{X: 83, Y: 78}))
		})

		It("traces a closed loop around a lone source", func() {
			f := eng.Snapshot()
			Expect(f.Segments).NotTo(BeEmpty())
			Expect(f.Stats.Segments).To(Equal(len(f.Segments)))
			for _, s := range f.Segments {
				Expect(r2.Norm(r2.Sub(s.P1, source.Position))).To(BeNumerically("~", 20, 1))
			}
		})

		It("samples every grid point", func() {
			f := eng.Snapshot()
			Expect(f.Points).To(HaveLen(400))
			Expect(f.AboveFraction()).To(BeNumerically(">", 0))
			Expect(f.AboveFraction()).To(BeNumerically("<", 1))
		})

		It("leaves state alone on Snapshot", func() {
			first := eng.Snapshot()
			second := eng.Snapshot()
			Expect(second.Segments).To(Equal(first.Segments))
			Expect(second.Sources).To(Equal(first.Sources))
			Expect(eng.FrameIndex()).To(Equal(0))
		})

		It("hands out copies", func() {
			f := eng.Snapshot()
			f.Sources[0].Position = r2.Vec{}
			Expect(eng.Sources()[0].Position).To(Equal(source.Position))
		})

		It("restores spawn positions on Reset", func() {
			for i := 0; i < 10; i++ {
				eng.Step()
			}
			eng.Reset()
			Expect(eng.FrameIndex()).To(Equal(0))
			Expect(eng.Sources()[0].Position).To(Equal(source.Position))
			Expect(eng.Snapshot().Sources[0].Position).To(Equal(source.Position))
		})

		It("keeps sources inside the view", func() {
			for i := 0; i < 2000; i++ {
				f := eng.Step()
				p := f.Sources[0].Position
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<=", 160))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<=", 160))
			}
		})

		It("switches saddle mode at runtime", func() {
			eng.SetSaddleMode(contour.SaddleCenter)
			Expect(eng.Tracer().SaddleMode()).To(Equal(contour.SaddleCenter))
			Expect(eng.Config().Saddle).To(Equal("center"))
		})
	})

	Describe("static fields", func() {
		It("does not move anything for the heart field", func() {
			cfg = config.GetPreset("heart")
			eng, err := engine.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			a := eng.Snapshot()
			b := eng.Step()
			Expect(b.Segments).To(Equal(a.Segments))
			Expect(b.Segments).NotTo(BeEmpty())
		})
	})

	Describe("switching field kind", func() {
		DescribeTable("traces a contour in the default view",
			func(kind string) {
				c := config.DefaultConfig()
				c.SetField(kind)
				Expect(c.Validate()).To(Succeed())

				eng, err := engine.New(c)
				Expect(err).NotTo(HaveOccurred())
				Expect(eng.Snapshot().Segments).NotTo(BeEmpty())
			},
			Entry("heart", "heart"),
			Entry("linear", "linear"),
		)
	})

	Describe("Run", func() {
		var eng *engine.Engine

		BeforeEach(func() {
			var err error
			eng, err = engine.NewWithSources(cfg, []field.PointSource{source})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a non-positive frame count", func() {
			_, err := eng.Run(context.Background(), 0)
			Expect(errors.Is(err, engine.ErrNoFrames)).To(BeTrue())
		})

		It("records one sample per frame", func() {
			res, err := eng.Run(context.Background(), 25)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Frames).To(Equal(25))
			Expect(res.Segments).To(HaveLen(25))
			Expect(res.Lengths).To(HaveLen(25))
			Expect(res.AboveFractions).To(HaveLen(25))
			Expect(res.Final.Index).To(Equal(25))
		})

		It("feeds metrics and observers", func() {
			m := &counter{frames: 99}
			seen := 0
			eng.AddMetric(m)
			eng.AddObserver(engine.ObserverFunc(func(engine.Frame) { seen++ }))

			res, err := eng.Run(context.Background(), 12)
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal(12))
			Expect(res.Metrics).To(HaveKeyWithValue("frames", 12.0))
		})

		It("stops on a canceled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			res, err := eng.Run(ctx, 10)

			var fe *engine.FrameError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Frame).To(Equal(0))
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(res.Frames).To(Equal(0))
		})
	})

	Describe("Ensemble", func() {
		It("runs every seed", func() {
			cfg.Sources.Count = 3
			ens := engine.NewEnsemble(cfg, 4, 10, func() []engine.Metric {
				return []engine.Metric{&counter{}}
			})
			results, err := ens.Run(context.Background(), 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(4))
			for _, r := range results {
				Expect(r.Frames).To(Equal(8))
				Expect(r.Metrics["frames"]).To(Equal(8.0))
			}
		})

		It("matches a single run with the same seed", func() {
			ens := engine.NewEnsemble(cfg, 2, 7, nil)
			results, err := ens.Run(context.Background(), 5)
			Expect(err).NotTo(HaveOccurred())

			single := cfg.Clone()
			single.Seed = 8
			eng, err := engine.New(single)
			Expect(err).NotTo(HaveOccurred())
			res, err := eng.Run(context.Background(), 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(results[1].Segments).To(Equal(res.Segments))
		})

		It("fails fast on a bad config", func() {
			cfg.Sources.MaxSpeed = 0
			_, err := engine.NewEnsemble(cfg, 3, 0, nil).Run(context.Background(), 5)
			Expect(err).To(HaveOccurred())
		})

		It("rejects zero runs", func() {
			_, err := engine.NewEnsemble(cfg, 0, 0, nil).Run(context.Background(), 5)
			Expect(err).To(HaveOccurred())
		})
	})
})
