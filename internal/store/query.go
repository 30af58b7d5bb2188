package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchFilter holds the optional prefix filters of a post search. Empty
// fields are skipped entirely rather than matched against a literal, and the
// supplied ones are OR-ed: a post matching any single filter is included.
type SearchFilter struct {
	Title       string
	Description string
	Author      string
	Hashtag     string
}

func (f SearchFilter) Empty() bool {
	return f.Title == "" && f.Description == "" && f.Author == "" && f.Hashtag == ""
}

// prefixRegex builds a case-insensitive starts-with matcher. User input is
// quoted so regex metacharacters in a query cannot alter the pattern.
func prefixRegex(prefix string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"}
}

// Query compiles the filter into a $or of prefix predicates. Returns nil when
// no filter fields are set.
func (f SearchFilter) Query() bson.M {
	var or []bson.M
	if f.Title != "" {
		or = append(or, bson.M{"title": prefixRegex(f.Title)})
	}
	if f.Description != "" {
		or = append(or, bson.M{"description": prefixRegex(f.Description)})
	}
	if f.Author != "" {
		or = append(or, bson.M{"author.name": prefixRegex(f.Author)})
	}
	if f.Hashtag != "" {
		// Matches when any element of the hashtag array has the prefix.
		or = append(or, bson.M{"hashtag": bson.M{"$elemMatch": bson.M{"$regex": prefixRegex(f.Hashtag)}}})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"$or": or}
}
