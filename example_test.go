package linechart_test

import (
	"fmt"
	"strings"

	"honnef.co/go/linechart"
)

func ExampleMapPoints() {
	pts, err := linechart.MapPoints([]int{10, 20, 15, 30, 5}, linechart.Sz(300, 200), 60)
	if err != nil {
		panic(err)
	}
	for _, pt := range pts {
		fmt.Printf("(%.0f, %.0f)\n", pt.X, pt.Y)
	}
	// Output:
	// (30, 160)
	// (90, 80)
	// (150, 120)
	// (210, 0)
	// (270, 200)
}

func ExampleInterpolate() {
	segs, err := linechart.Interpolate([]linechart.Point{
		linechart.Pt(0, 0),
		linechart.Pt(10, 10),
		linechart.Pt(20, 0),
	})
	if err != nil {
		panic(err)
	}
	for _, seg := range segs {
		fmt.Println(seg.Control1, seg.Control2)
	}
	// Output:
	// (3, 3) (7, 10)
	// (13, 10) (17, 3)
}

func ExampleRender() {
	cfg := linechart.DefaultConfig()
	cfg.DrawCurve = false

	scene, err := linechart.Render([]int{10, 20, 15, 30, 5}, linechart.Sz(240, 280), cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println(scene.Line.SVG(linechart.SVGOptions{MaxPrecision: 2}))
	fmt.Println(scene.Fill.SVG(linechart.SVGOptions{MaxPrecision: 2}))
	fmt.Println(scene.ContentWidth, scene.ScrollOffset())
	var texts []string
	for _, l := range scene.GridLabels {
		texts = append(texts, l.Text)
	}
	fmt.Println(strings.Join(texts, " "))
	// Output:
	// M30,160 L90,80 L150,120 L210,0 L270,200
	// M30,200 L30,160 L90,80 L150,120 L210,0 L270,200 L270,200 L30,200 Z
	// 420 180
	// 30 23 17 11 5
}

func ExampleSurface() {
	s := linechart.NewSurface(linechart.Sz(320, 240))
	s.OnRender(func(scene *linechart.Scene) {
		fmt.Printf("rendered %d points, %d dots\n", len(scene.Points), len(scene.Dots))
	})
	if _, err := s.SetData([]int{3, 1, 4, 1, 5}); err != nil {
		panic(err)
	}
	if _, err := s.SetRegionSize(linechart.Sz(320, 60)); err != nil {
		fmt.Println(err)
	}
	fmt.Println(s.Scene().Empty())
	// Output:
	// rendered 5 points, 5 dots
	// linechart: drawing region must have a positive height
	// true
}
