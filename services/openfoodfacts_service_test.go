package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

func newOFFService(url string) *OpenFoodFactsService {
	s := NewOpenFoodFactsService()
	s.baseURL = url + "/"
	return s
}

func TestLookupMapsProductFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/737628064502.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"product": {
				"product_name": "Rice Noodles",
				"nutriments": {
					"energy-kcal_100g": 375,
					"proteins_100g": 7.5,
					"fat_100g": 1.2,
					"carbohydrates_100g": 83.3,
					"fiber_100g": 1.7,
					"sugars_100g": 4.2
				},
				"nutriscore_grade": "c",
				"ingredients_text": "rice, water, salt"
			}
		}`)
	}))
	defer srv.Close()

	rec, err := newOFFService(srv.URL).Lookup(context.Background(), "737628064502")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if rec.FoodItem != "Rice Noodles" {
		t.Errorf("FoodItem = %q", rec.FoodItem)
	}
	if rec.Calories != "375" || rec.Protein != "7.5" || rec.Fats != "1.2" || rec.Carbohydrates != "83.3" {
		t.Errorf("macros = %q/%q/%q/%q", rec.Calories, rec.Protein, rec.Fats, rec.Carbohydrates)
	}
	if rec.Fiber != "1.7" || rec.Sugar != "4.2" {
		t.Errorf("fiber/sugar = %q/%q", rec.Fiber, rec.Sugar)
	}
	if rec.Nutriscore != "c" || rec.HealthRating != "Moderate" {
		t.Errorf("nutriscore/rating = %q/%q", rec.Nutriscore, rec.HealthRating)
	}
	if rec.Ingredients != "rice, water, salt" {
		t.Errorf("Ingredients = %q", rec.Ingredients)
	}
	// Fields the barcode source cannot fill still carry placeholders.
	if rec.Summary != models.PlaceholderValue || rec.ServingNotes != models.PlaceholderValue {
		t.Errorf("summary/serving_notes = %q/%q, want placeholders", rec.Summary, rec.ServingNotes)
	}
}

func TestLookupMissingNutrimentsBecomePlaceholders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"product": {"product_name": "Mystery Snack", "nutriments": {}}}`)
	}))
	defer srv.Close()

	rec, err := newOFFService(srv.URL).Lookup(context.Background(), "1234567890")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	for name, got := range map[string]string{
		"calories": rec.Calories, "protein": rec.Protein,
		"fats": rec.Fats, "carbohydrates": rec.Carbohydrates,
		"nutriscore": rec.Nutriscore, "ingredients": rec.Ingredients,
	} {
		if got != models.PlaceholderValue {
			t.Errorf("%s = %q, want %q", name, got, models.PlaceholderValue)
		}
	}
	if rec.HealthRating != models.PlaceholderRating {
		t.Errorf("health_rating = %q, want %q", rec.HealthRating, models.PlaceholderRating)
	}
}

func TestLookupWithoutProductKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": 0, "code": "0000000"}`)
	}))
	defer srv.Close()

	_, err := newOFFService(srv.URL).Lookup(context.Background(), "0000000")
	if !errors.Is(err, ErrIncompleteData) {
		t.Fatalf("err = %v, want ErrIncompleteData", err)
	}
}

func TestLookupNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newOFFService(srv.URL).Lookup(context.Background(), "9999999")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestRatingFromNutriscore(t *testing.T) {
	cases := map[string]string{
		"a": "Healthy", "B": "Healthy", "c": "Moderate",
		"d": "Unhealthy", "e": "Unhealthy", "": models.PlaceholderRating,
		"x": models.PlaceholderRating,
	}
	for grade, want := range cases {
		if got := ratingFromNutriscore(grade); got != want {
			t.Errorf("ratingFromNutriscore(%q) = %q, want %q", grade, got, want)
		}
	}
}
