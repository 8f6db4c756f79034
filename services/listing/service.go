package listing

import (
	"context"
	"encoding/json"
	"math"
	"time"

	listingRepo "voyago/database/repository/listing"
	reviewRepo "voyago/database/repository/review"
	"voyago/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	listingsCacheKey = "listings:all"
	listingsCacheTTL = 60 * time.Second
)

// Service handles listing and review operations.
type Service interface {
	Create(ctx context.Context, input models.ListingInput) (*models.Listing, error)
	Get(ctx context.Context, id string) (*models.ListingDetail, error)
	List(ctx context.Context) ([]models.Listing, error)
	Update(ctx context.Context, id string, input models.ListingInput) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
	AddReview(ctx context.Context, listingID string, input models.ReviewInput) (*models.Review, error)
	ListReviews(ctx context.Context, listingID string) ([]models.Review, error)
}

// DefaultService is the production Service implementation. Cache may be
// nil, in which case every list read goes to the store.
type DefaultService struct {
	Listings listingRepo.ListingRepository
	Reviews  reviewRepo.ReviewRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}

// Create persists a new listing and invalidates the list cache.
func (s *DefaultService) Create(ctx context.Context, input models.ListingInput) (*models.Listing, error) {
	l := &models.Listing{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
	}
	if err := s.Listings.Create(l); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return l, nil
}

// Get fetches a listing with its reviews and average rating.
func (s *DefaultService) Get(ctx context.Context, id string) (*models.ListingDetail, error) {
	l, err := s.Listings.GetByID(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.Reviews.ListByListing(id)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return &models.ListingDetail{
		Listing:       *l,
		Reviews:       reviews,
		AverageRating: AverageRating(reviews),
	}, nil
}

// List fetches all listings, served from the cache when warm.
func (s *DefaultService) List(ctx context.Context) ([]models.Listing, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, listingsCacheKey).Result(); err == nil {
			var listings []models.Listing
			if err := json.Unmarshal([]byte(cached), &listings); err == nil {
				return listings, nil
			}
		}
	}

	listings, err := s.Listings.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(listings); err == nil {
			if err := s.Cache.Set(ctx, listingsCacheKey, data, listingsCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache listings", zap.Error(err))
			}
		}
	}
	return listings, nil
}

// Update modifies a listing and invalidates the list cache.
func (s *DefaultService) Update(ctx context.Context, id string, input models.ListingInput) (*models.Listing, error) {
	l, err := s.Listings.GetByID(id)
	if err != nil {
		return nil, err
	}

	l.Title = input.Title
	l.Description = input.Description
	l.Location = input.Location
	l.PricePerNight = input.PricePerNight

	if err := s.Listings.Update(l); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return l, nil
}

// Delete removes a listing and invalidates the list cache.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Listings.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// AddReview validates the rating and comment bounds and persists the
// review against an existing listing.
func (s *DefaultService) AddReview(ctx context.Context, listingID string, input models.ReviewInput) (*models.Review, error) {
	if err := ValidateReview(input.Rating, input.Comment); err != nil {
		return nil, err
	}

	if _, err := s.Listings.GetByID(listingID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		ListingID: listingID,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.Reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews fetches the reviews of an existing listing.
func (s *DefaultService) ListReviews(ctx context.Context, listingID string) ([]models.Review, error) {
	if _, err := s.Listings.GetByID(listingID); err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.ListByListing(listingID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// AverageRating computes the mean review rating rounded to one decimal,
// or nil when there are no reviews.
func AverageRating(reviews []models.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return &avg
}

func (s *DefaultService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, listingsCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate listings cache", zap.Error(err))
	}
}
