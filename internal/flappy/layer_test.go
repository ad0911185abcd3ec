package flappy

import (
	"reflect"
	"testing"
)

func TestUpdateLayerRemovesWithoutSkipping(t *testing.T) {
	// Widths of 1 make anything advanced below x=-1 off screen
	clouds := []Cloud{
		{X: 10, Width: 1, Speed: 1},
		{X: -0.5, Width: 1, Speed: 1},
		{X: -0.2, Width: 1, Speed: 1},
		{X: 20, Width: 1, Speed: 1},
		{X: -0.9, Width: 1, Speed: 1},
	}

	var visited []float64
	clouds = updateLayer(clouds, func(c *Cloud) {
		c.Advance()
		visited = append(visited, c.X)
	})

	if len(visited) != 5 {
		t.Fatalf("every entity should be visited once, visited %v", visited)
	}
	expectedVisits := []float64{-1.9, 19, -1.2, -1.5, 9}
	for i := range expectedVisits {
		if !approx(visited[i], expectedVisits[i]) {
			t.Errorf("visit %d saw x=%f, expected %f (reverse order)", i, visited[i], expectedVisits[i])
		}
	}

	var survivors []float64
	for _, c := range clouds {
		survivors = append(survivors, c.X)
	}
	if !reflect.DeepEqual(survivors, []float64{9, 19}) {
		t.Errorf("survivors = %v, expected [9 19] in original order", survivors)
	}
}

func TestTreeOffscreenUsesFootprint(t *testing.T) {
	tr := Tree{X: -49, Footprint: 50}
	if tr.Offscreen() {
		t.Error("tree with footprint still visible should stay")
	}
	tr.X = -50.5
	if !tr.Offscreen() {
		t.Error("tree past its footprint should be off screen")
	}
}
