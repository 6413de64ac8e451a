package detection

import (
	"math"
	"sort"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// Hough deskew parameters. The angle table spans [-45°, +45°] in 0.1° steps;
// anything steeper is treated as a coarse orientation problem, not skew.
const (
	skewAngleMin  = -45.0
	skewAngleStep = 0.1
	skewSteps     = 451

	// darkLuma is the binarization cutoff: a sample is "dark" when its
	// luma is below this value.
	darkLuma = 128

	// borderFraction of rows excluded at the top and bottom of the image,
	// where scanner-border artifacts would otherwise dominate the vote.
	borderFraction = 0.01

	// maxPeaks strongest accumulator cells considered for clustering.
	maxPeaks = 100

	// clusterSpread is the maximum angle spread, in degrees, within one
	// cluster of peak angles. Slightly above 2.0 so that peaks exactly
	// 20 steps apart still cluster.
	clusterSpread = 2.01
)

// SkewResult is the outcome of a deskew estimation.
//
// When Detected is true, AngleDegrees is the document's tilt: positive means
// the dominant line structure slopes clockwise on screen, and rotating the
// image by -AngleDegrees levels it. Votes counts the accumulator votes in
// the winning angle cluster and serves as a confidence signal. When Detected
// is false no consistent skew was found and no correction should be applied.
type SkewResult struct {
	AngleDegrees float64 `json:"angle_degrees"`
	Votes        int     `json:"votes"`
	Detected     bool    `json:"detected"`
}

type skewPeak struct {
	dist  int
	angle int // index into the angle table
	votes int
}

// EstimateSkew detects the image's dominant line orientation and returns the
// corresponding tilt angle in [-45°, +45°].
//
// The image is binarized at luma < 128 and the bottom edges of dark regions
// (a dark sample whose lower neighbor is not dark) vote in a discretized
// Hough accumulator over perpendicular distance and angle. The 100
// highest-voting cells are reduced to those at least half as strong as the
// 10th-highest, and the surviving peak angles are clustered; the estimate is
// the mean of the largest cluster. If that cluster holds fewer than half of
// the surviving peaks there is no consistent skew and a zero result with
// Detected == false is returned.
func EstimateSkew(m *raster.Image) *SkewResult {
	if m.Validate() != nil {
		return &SkewResult{}
	}

	edges := bottomEdgePoints(m)
	if len(edges) == 0 {
		return &SkewResult{}
	}

	sinTab, cosTab := angleTables()

	// One accumulator column per angle step. Voting is parallelized over
	// disjoint angle ranges, so every cell has a single writer and the
	// result is identical to a sequential pass.
	distBuckets := 2 * (m.Width + m.Height)
	acc := make([]int, skewSteps*distBuckets)
	width := float64(m.Width)
	parallel.Line(skewSteps, func(start, end int) {
		for a := start; a < end; a++ {
			sin, cos := sinTab[a], cosTab[a]
			col := acc[a*distBuckets : (a+1)*distBuckets]
			for _, p := range edges {
				d := int(math.Floor(float64(p.y)*cos - float64(p.x)*sin + width))
				if d >= 0 && d < distBuckets {
					col[d]++
				}
			}
		}
	})

	peaks := strongestPeaks(acc, distBuckets)
	if len(peaks) == 0 {
		return &SkewResult{}
	}

	// Significance filter: half the 10th-highest peak's votes (or the
	// weakest peak's, for short lists).
	ref := peaks[len(peaks)-1].votes
	if len(peaks) >= 10 {
		ref = peaks[9].votes
	}
	minVotes := ref / 2
	survivors := peaks[:0]
	for _, p := range peaks {
		if p.votes >= minVotes {
			survivors = append(survivors, p)
		}
	}

	angle, votes, ok := dominantAngleCluster(survivors)
	if !ok {
		return &SkewResult{}
	}
	return &SkewResult{AngleDegrees: angle, Votes: votes, Detected: true}
}

// angleTables precomputes sin and cos for every angle step.
func angleTables() (sin, cos []float64) {
	sin = make([]float64, skewSteps)
	cos = make([]float64, skewSteps)
	for a := 0; a < skewSteps; a++ {
		rad := (skewAngleMin + float64(a)*skewAngleStep) * math.Pi / 180
		sin[a] = math.Sin(rad)
		cos[a] = math.Cos(rad)
	}
	return sin, cos
}

type edgePoint struct {
	x, y int
}

// bottomEdgePoints collects pixels that are dark while their vertical
// neighbor below is not. The top and bottom 1% of rows are skipped to keep
// scanner-border artifacts out of the vote.
func bottomEdgePoints(m *raster.Image) []edgePoint {
	margin := int(float64(m.Height) * borderFraction)

	// Per-row dark mask, computed in parallel; each row has one writer.
	dark := make([]bool, m.Width*m.Height)
	parallel.Line(m.Height, func(start, end int) {
		for y := start; y < end; y++ {
			row := m.Row(y)
			base := y * m.Width
			for x := 0; x < m.Width; x++ {
				dark[base+x] = raster.Luma(row[x*4], row[x*4+1], row[x*4+2]) < darkLuma
			}
		}
	})

	var edges []edgePoint
	for y := margin; y < m.Height-1-margin; y++ {
		base := y * m.Width
		below := base + m.Width
		for x := 0; x < m.Width; x++ {
			if dark[base+x] && !dark[below+x] {
				edges = append(edges, edgePoint{x: x, y: y})
			}
		}
	}
	return edges
}

// strongestPeaks returns up to maxPeaks accumulator cells ordered by
// descending vote count, maintained by insertion into a short sorted list.
func strongestPeaks(acc []int, distBuckets int) []skewPeak {
	peaks := make([]skewPeak, 0, maxPeaks)
	for a := 0; a < skewSteps; a++ {
		col := acc[a*distBuckets : (a+1)*distBuckets]
		for d, votes := range col {
			if votes == 0 {
				continue
			}
			if len(peaks) == maxPeaks && votes <= peaks[maxPeaks-1].votes {
				continue
			}
			i := sort.Search(len(peaks), func(i int) bool {
				return peaks[i].votes < votes
			})
			if len(peaks) < maxPeaks {
				peaks = append(peaks, skewPeak{})
			}
			copy(peaks[i+1:], peaks[i:])
			peaks[i] = skewPeak{dist: d, angle: a, votes: votes}
		}
	}
	return peaks
}

// dominantAngleCluster finds the largest run of peak angles within a
// clusterSpread window and returns its mean angle and total votes. ok is
// false when the largest cluster holds fewer than half of the peaks.
func dominantAngleCluster(peaks []skewPeak) (angle float64, votes int, ok bool) {
	if len(peaks) == 0 {
		return 0, 0, false
	}

	sorted := make([]skewPeak, len(peaks))
	copy(sorted, peaks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].angle < sorted[j].angle
	})

	angleOf := func(p skewPeak) float64 {
		return skewAngleMin + float64(p.angle)*skewAngleStep
	}

	bestStart, bestCount := 0, 0
	for i, j := 0, 0; i < len(sorted); i++ {
		if j < i {
			j = i
		}
		for j < len(sorted) && angleOf(sorted[j])-angleOf(sorted[i]) <= clusterSpread {
			j++
		}
		if j-i > bestCount {
			bestStart, bestCount = i, j-i
		}
	}

	if bestCount*2 < len(sorted) {
		return 0, 0, false
	}

	sum := 0.0
	for _, p := range sorted[bestStart : bestStart+bestCount] {
		sum += angleOf(p)
		votes += p.votes
	}
	return sum / float64(bestCount), votes, true
}
