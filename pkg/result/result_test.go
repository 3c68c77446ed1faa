package result

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNewCurveLength(t *testing.T) {
	c := NewCurve("plane_straight_line", [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	if math.Abs(c.Length-2.0) > 1e-10 {
		t.Errorf("NewCurve length failed: expected 2.0, got %v", c.Length)
	}
}

func TestTotalDistancePtrUnreachable(t *testing.T) {
	if TotalDistancePtr(false, 5.0) != nil {
		t.Error("expected nil pointer for unreachable")
	}
}

func TestTotalDistancePtrReachable(t *testing.T) {
	p := TotalDistancePtr(true, 5.0)
	if p == nil || *p != 5.0 {
		t.Errorf("expected pointer to 5.0, got %v", p)
	}
}

func TestDijkstraJSONNullOnUnreachable(t *testing.T) {
	d := Dijkstra{
		InputFileName: "model.obj",
		Reachable:     false,
		TotalDistance: TotalDistancePtr(false, 0),
		Path:          []int{},
		AllDistances:  []float64{0, math.MaxFloat64},
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["totalDistance"] != nil {
		t.Errorf("expected null totalDistance, got %v", decoded["totalDistance"])
	}
}

func TestAnalyticsErrorEmptyOnSuccess(t *testing.T) {
	a := Analytics{
		SurfaceType: "plane",
		Curves:      []Curve{NewCurve("plane_straight_line", [][3]float64{{0, 0, 0}, {1, 1, 0}})},
	}
	if a.Error != "" {
		t.Errorf("expected empty error, got %q", a.Error)
	}
	if len(a.Curves) == 0 {
		t.Error("expected at least one curve")
	}
}
