package products

import (
	"testing"

	"freshmart/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilter(t *testing.T) {
	t.Run("default filter lists active only", func(t *testing.T) {
		filter := BuildProductFilter(utils.QueryOptions{}, "")
		if filter["is_active"] != true {
			t.Error("is_active must always be true")
		}
		if len(filter) != 1 {
			t.Errorf("unexpected extra keys: %v", filter)
		}
	})

	t.Run("category narrows the filter", func(t *testing.T) {
		filter := BuildProductFilter(utils.QueryOptions{}, "c0000000001")
		if filter["categoryid"] != "c0000000001" {
			t.Errorf("categoryid = %v", filter["categoryid"])
		}
	})

	t.Run("search matches name or description, case-insensitive", func(t *testing.T) {
		filter := BuildProductFilter(utils.QueryOptions{Search: "milk"}, "")
		or, ok := filter["$or"].([]bson.M)
		if !ok || len(or) != 2 {
			t.Fatalf("$or = %v", filter["$or"])
		}
		re, ok := or[0]["name"].(primitive.Regex)
		if !ok {
			t.Fatalf("name clause = %v", or[0]["name"])
		}
		if re.Pattern != "milk" || re.Options != "i" {
			t.Errorf("regex = %+v, want case-insensitive 'milk'", re)
		}
		if _, ok := or[1]["description"]; !ok {
			t.Error("description clause missing")
		}
	})
}
