// Package bias computes the partisan-bias step curve for one state and
// year: the relation between hypothetical uniform swings of the two-party
// vote margin and the resulting Democratic share of seats.
package bias

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"housebias/internal/dataset"
)

// Curve is the computed series for one (state, year) pair. Margins and
// SeatShares are aligned positionally and hold Districts+2 entries each:
// one per district plus the two sentinel boundary values.
type Curve struct {
	Year      int
	State     string
	Districts int

	// Margins is the sorted extrapolated margin sequence, clipped to
	// [-1, 1], anchored by sentinels at -1 and +1.
	Margins []float64

	// SeatShares are the step function's y-values: k/Districts for
	// k = 0..Districts, with the final value duplicated.
	SeatShares []float64

	// ActualMargin is (dem-rep)/(dem+rep) over the raw statewide votes.
	ActualMargin float64

	// DemSeats counts districts where the Democratic two-party share is
	// at least the Republican share.
	DemSeats int

	// BiasPercent is the partisan bias at zero statewide margin, in
	// rounded percentage points of seat share.
	BiasPercent int
}

// Compute derives the curve for state and year from the dataset. It is a
// pure function of its inputs: identical calls yield identical series.
func Compute(ds *dataset.Dataset, state string, year int) (*Curve, error) {
	numDistricts, ok := ds.DistrictCount(state)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}

	// Two-party vote shares per district, 1-based district numbers.
	// Districts absent from the data keep zero shares for both parties
	// but still count toward total seats.
	demShare := make([]float64, numDistricts+1)
	repShare := make([]float64, numDistricts+1)
	demVotes, repVotes := 0, 0

	for _, rec := range ds.Records() {
		if rec.Year != year || rec.State != state {
			continue
		}
		if rec.Party != "democrat" && rec.Party != "republican" {
			continue
		}
		if rec.District < 1 || rec.District > numDistricts {
			return nil, fmt.Errorf("%w: %s %d: district %d outside 1..%d",
				dataset.ErrDataLoad, state, year, rec.District, numDistricts)
		}
		if rec.TotalVotes <= 0 {
			return nil, fmt.Errorf("%w: %s %d: non-positive total votes in district %d",
				dataset.ErrDataLoad, state, year, rec.District)
		}
		// Same-party rows in one district accumulate additively, the
		// way summed same-party totals would.
		share := float64(rec.CandidateVotes) / float64(rec.TotalVotes)
		if rec.Party == "democrat" {
			demShare[rec.District] += share
			demVotes += rec.CandidateVotes
		} else {
			repShare[rec.District] += share
			repVotes += rec.CandidateVotes
		}
	}

	if demVotes+repVotes == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrNoData, state, year)
	}
	actualMargin := float64(demVotes-repVotes) / float64(demVotes+repVotes)

	margins := make([]float64, 0, numDistricts+2)
	for d := 1; d <= numDistricts; d++ {
		margins = append(margins, clip(repShare[d]-demShare[d]+actualMargin))
	}
	margins = append(margins, -1, 1)
	slices.Sort(margins)

	demSeats := 0
	for d := 1; d <= numDistricts; d++ {
		if demShare[d] >= repShare[d] {
			demSeats++
		}
	}
	if demSeats == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrNoMajority, state, year)
	}

	seatShares := make([]float64, 0, numDistricts+2)
	for k := 0; k <= numDistricts; k++ {
		seatShares = append(seatShares, float64(k)/float64(numDistricts))
	}
	seatShares = append(seatShares, 1)

	// First index whose margin is >= 0; the sentinel at +1 guarantees
	// one exists.
	k := sort.SearchFloat64s(margins, 0)
	biasFraction := (float64(k)-1)/float64(numDistricts) - 0.5

	return &Curve{
		Year:         year,
		State:        state,
		Districts:    numDistricts,
		Margins:      margins,
		SeatShares:   seatShares,
		ActualMargin: actualMargin,
		DemSeats:     demSeats,
		BiasPercent:  int(math.Round(biasFraction * 100)),
	}, nil
}

// SeatShare is the Democratic seat fraction at the actual result.
func (c *Curve) SeatShare() float64 {
	return float64(c.DemSeats) / float64(c.Districts)
}

// LegendLabel formats the curve's legend entry.
func (c *Curve) LegendLabel() string {
	return fmt.Sprintf("%d; D%s%% partisan bias", c.Year, SignedPercent(c.BiasPercent))
}

// SignedPercent renders n with an explicit leading sign: "+3", "-2", "+0".
func SignedPercent(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}

func clip(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
