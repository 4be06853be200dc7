package models

import (
	"fmt"
	"time"
)

// Interaction is the per-movie user state on one device or account.
type Interaction struct {
	MovieID    int  `json:"movie_id"`
	Liked      bool `json:"liked"`
	Bookmarked bool `json:"bookmarked"`
	Watched    bool `json:"watched"`
	// UserRating is 0 (unrated) through 5.
	UserRating int       `json:"rating"`
	DateAdded  time.Time `json:"dateAdded"`
}

// IsEmpty reports whether the interaction is equivalent to an absent one.
func (i Interaction) IsEmpty() bool {
	return !i.Liked && !i.Bookmarked && !i.Watched && i.UserRating == 0
}

const (
	MinUserRating = 0
	MaxUserRating = 5
)

// Flag names a boolean interaction field.
type Flag string

const (
	FlagLiked      Flag = "liked"
	FlagBookmarked Flag = "bookmarked"
	FlagWatched    Flag = "watched"
)

// ParseFlag validates a flag name.
func ParseFlag(s string) (Flag, error) {
	switch f := Flag(s); f {
	case FlagLiked, FlagBookmarked, FlagWatched:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFlag, s)
}

// Set assigns the named flag.
func (i *Interaction) Set(f Flag, value bool) {
	switch f {
	case FlagLiked:
		i.Liked = value
	case FlagBookmarked:
		i.Bookmarked = value
	case FlagWatched:
		i.Watched = value
	}
}

// CollectionKind names a derived collection.
type CollectionKind string

const (
	CollectionBookmarked CollectionKind = "bookmarked"
	CollectionLiked      CollectionKind = "liked"
	CollectionWatched    CollectionKind = "watched"
	CollectionRated      CollectionKind = "rated"
)

// ParseCollectionKind validates a collection name. "watchlist" is accepted
// as an alias of bookmarked.
func ParseCollectionKind(s string) (CollectionKind, error) {
	switch k := CollectionKind(s); k {
	case CollectionBookmarked, CollectionLiked, CollectionWatched, CollectionRated:
		return k, nil
	case "watchlist":
		return CollectionBookmarked, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCollection, s)
}

// Includes reports whether an interaction belongs to the collection.
func (k CollectionKind) Includes(i Interaction) bool {
	switch k {
	case CollectionBookmarked:
		return i.Bookmarked
	case CollectionLiked:
		return i.Liked
	case CollectionWatched:
		return i.Watched
	case CollectionRated:
		return i.UserRating > 0
	}
	return false
}

// Clear removes the interaction from the collection, leaving other fields alone.
func (k CollectionKind) Clear(i *Interaction) {
	switch k {
	case CollectionBookmarked:
		i.Bookmarked = false
	case CollectionLiked:
		i.Liked = false
	case CollectionWatched:
		i.Watched = false
	case CollectionRated:
		i.UserRating = 0
	}
}

// SetFlagRequest is the body of a flag update.
type SetFlagRequest struct {
	Value bool `json:"value"`
}

// SetRatingRequest is the body of a rating update.
type SetRatingRequest struct {
	Rating int `json:"rating" validate:"gte=0,lte=5"`
}
