package fit

import "sort"

// Nelder–Mead simplex constants.
const (
	nmReflection  = 1.0
	nmExpansion   = 2.0
	nmContraction = 0.5
	nmShrink      = 0.5
)

type simplexVertex struct {
	point []float64
	value float64
}

// NelderMead minimizes an arbitrary scalar objective from an initial simplex
// of k+1 points in k dimensions and returns the best point found. It stops
// when the value spread across the simplex drops below tolerance or the
// iteration cap is reached. The simplex is copied; callers may reuse theirs.
func NelderMead(objective func([]float64) float64, simplex [][]float64, maxIterations int, tolerance float64) []float64 {
	dim := len(simplex[0])
	vertices := make([]simplexVertex, len(simplex))
	for i, p := range simplex {
		point := make([]float64, dim)
		copy(point, p)
		vertices[i] = simplexVertex{point: point, value: objective(point)}
	}

	for iter := 0; iter < maxIterations; iter++ {
		sort.Slice(vertices, func(i, j int) bool { return vertices[i].value < vertices[j].value })

		best := vertices[0]
		worst := vertices[len(vertices)-1]
		secondWorst := vertices[len(vertices)-2]

		if worst.value-best.value < tolerance {
			break
		}

		// Centroid of all vertices except the worst.
		centroid := make([]float64, dim)
		for _, v := range vertices[:len(vertices)-1] {
			for j := range centroid {
				centroid[j] += v.point[j]
			}
		}
		for j := range centroid {
			centroid[j] /= float64(len(vertices) - 1)
		}

		reflected := make([]float64, dim)
		for j := range reflected {
			reflected[j] = centroid[j] + nmReflection*(centroid[j]-worst.point[j])
		}
		reflectedValue := objective(reflected)

		switch {
		case reflectedValue < best.value:
			// Try to expand further along the same direction.
			expanded := make([]float64, dim)
			for j := range expanded {
				expanded[j] = centroid[j] + nmExpansion*(reflected[j]-centroid[j])
			}
			expandedValue := objective(expanded)
			if expandedValue < reflectedValue {
				vertices[len(vertices)-1] = simplexVertex{point: expanded, value: expandedValue}
			} else {
				vertices[len(vertices)-1] = simplexVertex{point: reflected, value: reflectedValue}
			}

		case reflectedValue < secondWorst.value:
			vertices[len(vertices)-1] = simplexVertex{point: reflected, value: reflectedValue}

		default:
			// Contract toward the centroid, from the reflected point if it
			// beat the worst vertex, otherwise from the worst vertex itself.
			base := worst.point
			if reflectedValue < worst.value {
				base = reflected
			}
			contracted := make([]float64, dim)
			for j := range contracted {
				contracted[j] = centroid[j] + nmContraction*(base[j]-centroid[j])
			}
			contractedValue := objective(contracted)
			if contractedValue < worst.value {
				vertices[len(vertices)-1] = simplexVertex{point: contracted, value: contractedValue}
			} else {
				// Shrink every non-best vertex toward the best.
				for i := 1; i < len(vertices); i++ {
					for j := range vertices[i].point {
						vertices[i].point[j] = best.point[j] + nmShrink*(vertices[i].point[j]-best.point[j])
					}
					vertices[i].value = objective(vertices[i].point)
				}
			}
		}
	}

	sort.Slice(vertices, func(i, j int) bool { return vertices[i].value < vertices[j].value })
	return vertices[0].point
}
