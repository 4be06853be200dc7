package models

import "fmt"

const (
	// AverageRuntimeHours is the estimated length of one movie.
	AverageRuntimeHours = 2.5
	// NoTopGenre is reported for an empty collection.
	NoTopGenre = "None"
)

// CollectionQuery selects, searches and orders one collection.
type CollectionQuery struct {
	Kind       CollectionKind
	SearchTerm string
	SortKey    SortKey
}

// Validate defaults the sort key to dateAdded and rejects unknown keys.
func (q *CollectionQuery) Validate() error {
	if q.SortKey == "" {
		q.SortKey = SortDateAdded
	}
	if !collectionSortKeys[q.SortKey] {
		return fmt.Errorf("%w: unknown collection sort key %q", ErrInvalidQuery, q.SortKey)
	}
	if _, err := ParseCollectionKind(string(q.Kind)); err != nil {
		return err
	}
	return nil
}

// CollectionItem pairs a catalog movie with its interaction.
type CollectionItem struct {
	Movie       Movie       `json:"movie"`
	Interaction Interaction `json:"interaction"`
}

// CollectionStats summarises a collection.
type CollectionStats struct {
	TotalCount          int     `json:"total_count"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
	AverageRating       float64 `json:"average_rating"`
	TopGenre            string  `json:"top_genre"`
}

// CollectionResponse is the response shape of a collection view.
type CollectionResponse struct {
	Kind  CollectionKind   `json:"kind"`
	Items []CollectionItem `json:"items"`
	Stats CollectionStats  `json:"stats"`
}

// BulkRemoveRequest is the body of a bulk collection removal.
type BulkRemoveRequest struct {
	MovieIDs []int `json:"movie_ids" validate:"required,min=1"`
}
