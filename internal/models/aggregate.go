package models

// Aggregate holds the denormalized rating fields of a movie.
type Aggregate struct {
	Votes  int
	Rating float64
}

// ComputeAggregate derives the movie aggregate from the ratings of all its
// reviews. It is the single aggregation strategy used for create, update and
// delete, so the stored fields always equal a fresh re-aggregation. An empty
// set yields zero votes and a zero rating.
func ComputeAggregate(ratings []int) Aggregate {
	if len(ratings) == 0 {
		return Aggregate{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return Aggregate{
		Votes:  len(ratings),
		Rating: float64(sum) / float64(len(ratings)),
	}
}
