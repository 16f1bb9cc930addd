package distance_test

import (
	"fmt"

	"github.com/hupe1980/distances/distance"
)

func ExampleEuclidean() {
	d, err := distance.Euclidean[float64, float64]([]float64{3, 4}, []float64{0, 0})
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 5
}

func ExampleEuclideanSqSIMD() {
	d, err := distance.EuclideanSqSIMD[uint8, float32]([]uint8{3, 4}, []uint8{0, 0})
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 25
}

func ExampleProvider() {
	fn, err := distance.Provider[float32, float32](distance.MetricCosine, distance.BackendGeneric)
	if err != nil {
		panic(err)
	}
	d, _ := fn([]float32{1, 0}, []float32{0, 1})
	fmt.Println(d)
	// Output: 1
}

func ExampleValidate() {
	_, err := distance.Cosine[float32, float32]([]float32{1, 2}, []float32{1})
	fmt.Println(err)
	// Output: distance: dimension mismatch: 2 != 1
}
