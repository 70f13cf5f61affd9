// Package seed fills the database with a plausible few months of rental
// activity for demos and manual testing. Everything goes through the service
// layer so the usual guards and status recomputation apply.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/logger"
	"cordelia-backend/internal/repository"
	"cordelia-backend/internal/service"
)

var (
	styles = []string{
		"A-Line", "Sheath", "Shift", "Wrap", "Maxi", "Midi", "Mini", "Bodycon", "Fit and Flare",
		"Empire Waist", "Mermaid", "Ball Gown", "Tunic", "Off-the-Shoulder", "Halter",
		"Peplum", "Pencil", "High-Low", "Tea Length", "Sweater Dress",
	}
	brands = []string{
		"Chanel", "Gucci", "Louis Vuitton", "Prada", "Dior", "Versace", "Fendi", "Burberry", "Givenchy",
		"Valentino", "Balenciaga", "Hermès", "Alexander McQueen", "Celine", "Stella McCartney",
		"H&M", "Zara", "Forever 21", "Urban Outfitters", "Topshop", "Mango", "Charlotte Russe",
		"Express", "Lululemon Athletica",
	}
	colors = []string{
		"Red", "Black", "White", "Navy", "Emerald", "Burgundy", "Blush", "Champagne",
		"Silver", "Gold", "Lavender", "Teal", "Coral", "Ivory", "Plum",
	}
	firstNames = []string{
		"Ana", "Sofia", "Valentina", "Camila", "Mariana", "Lucia", "Fernanda", "Daniela",
		"Gabriela", "Isabella", "Regina", "Ximena", "Renata", "Paola", "Andrea",
	}
	lastNames = []string{
		"García", "Hernández", "López", "Martínez", "Rodríguez", "Pérez", "Sánchez",
		"Ramírez", "Torres", "Flores", "Rivera", "Gómez", "Díaz", "Cruz", "Morales",
	}
	paymentMethods = []string{"Credit Card", "Cash", "Transfer"}
	areaCodes      = []string{"55", "81", "33", "664", "662"}
)

// Options controls the volume of generated data.
type Options struct {
	Dresses   int
	Customers int
	Rents     int
	Sales     int
	Days      int   // history window, counted back from today
	Seed      int64 // rng seed, 0 means time-based
}

// DefaultOptions mirrors a small shop's half year of activity.
func DefaultOptions() Options {
	return Options{
		Dresses:   400,
		Customers: 250,
		Rents:     620,
		Sales:     120,
		Days:      180,
	}
}

// Seeder generates sample data through the service layer.
type Seeder struct {
	inventory   service.InventoryService
	customers   service.CustomerService
	rentals     service.RentalService
	maintenance service.MaintenanceService
	sales       service.SaleService
	reconcile   service.ReconcileService
	store       repository.Store
	rng         *rand.Rand
	now         func() time.Time
}

func New(
	inventory service.InventoryService,
	customers service.CustomerService,
	rentals service.RentalService,
	maintenance service.MaintenanceService,
	sales service.SaleService,
	reconcile service.ReconcileService,
	store repository.Store,
	seed int64,
) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		inventory:   inventory,
		customers:   customers,
		rentals:     rentals,
		maintenance: maintenance,
		sales:       sales,
		reconcile:   reconcile,
		store:       store,
		rng:         rand.New(rand.NewSource(seed)),
		now:         time.Now,
	}
}

// Run populates the database: dresses, customers, rents, weekly maintenance
// batches over the rental history, a reconciliation pass, then sales of
// dresses that earned their keep.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	dressIDs, err := s.createDresses(ctx, opts.Dresses)
	if err != nil {
		return fmt.Errorf("seeding dresses: %w", err)
	}
	customerIDs, err := s.createCustomers(ctx, opts.Customers)
	if err != nil {
		return fmt.Errorf("seeding customers: %w", err)
	}
	rents := s.createRents(ctx, dressIDs, customerIDs, opts.Rents, opts.Days)
	s.createWeeklyMaintenance(ctx, rents, opts.Days)

	if _, err := s.reconcile.ReconcileInventory(ctx); err != nil {
		return fmt.Errorf("reconciling inventory: %w", err)
	}
	if _, err := s.reconcile.ReconcileCustomers(ctx); err != nil {
		return fmt.Errorf("reconciling customers: %w", err)
	}

	s.createSales(ctx, customerIDs, opts.Sales)
	logger.Info("Seed complete",
		"dresses", len(dressIDs),
		"customers", len(customerIDs),
		"rents", len(rents))
	return nil
}

func (s *Seeder) pick(list []string) string {
	return list[s.rng.Intn(len(list))]
}

// randomPastDate returns a date within the history window, never a Sunday.
func (s *Seeder) randomPastDate(days int) time.Time {
	for {
		d := s.now().UTC().AddDate(0, 0, -s.rng.Intn(days))
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if d.Weekday() != time.Sunday {
			return d
		}
	}
}

func (s *Seeder) createDresses(ctx context.Context, count int) ([]int32, error) {
	ids := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		rentPrice := int32(1300 + 100*s.rng.Intn(8))
		cost := rentPrice + 100 + int32(s.rng.Intn(2001))
		marketPrice := cost + int32(s.rng.Intn(2001))

		dress, err := s.inventory.AddDress(ctx, service.AddDressInput{
			Size:        int32(2 + s.rng.Intn(11)),
			Color:       s.pick(colors),
			Style:       s.pick(styles),
			Brand:       s.pick(brands),
			Cost:        cost,
			MarketPrice: marketPrice,
			RentPrice:   rentPrice,
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, dress.ID)
	}
	return ids, nil
}

func (s *Seeder) createCustomers(ctx context.Context, count int) ([]int32, error) {
	ids := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		name := s.pick(firstNames)
		last := s.pick(lastNames)
		customer, err := s.customers.AddCustomer(ctx, service.AddCustomerInput{
			Email:       fmt.Sprintf("%s.%s.%d@example.com", name, last, i),
			Name:        name,
			LastName:    last,
			PhoneNumber: fmt.Sprintf("%s%07d", s.pick(areaCodes), s.rng.Intn(9000000)+1000000),
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, customer.ID)
	}
	return ids, nil
}

// createRents attempts count rents at random past dates. A dress that is
// currently out simply fails its guard and is skipped.
func (s *Seeder) createRents(ctx context.Context, dressIDs, customerIDs []int32, count, days int) []domain.Rent {
	rents := make([]domain.Rent, 0, count)
	for i := 0; i < count; i++ {
		rent, err := s.rentals.CreateRent(ctx, service.CreateRentInput{
			DressID:       dressIDs[s.rng.Intn(len(dressIDs))],
			CustomerID:    customerIDs[s.rng.Intn(len(customerIDs))],
			RentDate:      s.randomPastDate(days),
			PaymentMethod: s.pick(paymentMethods),
		})
		if err != nil {
			continue
		}
		rents = append(rents, *rent)
	}
	return rents
}

// createWeeklyMaintenance walks the history window week by week and books one
// maintenance batch per week over the dresses returned in that week, at a
// flat 120 per dress.
func (s *Seeder) createWeeklyMaintenance(ctx context.Context, rents []domain.Rent, days int) {
	today := s.now().UTC()
	weekStart := today.AddDate(0, 0, -days)
	for weekEnd := weekStart.AddDate(0, 0, 7); weekEnd.Before(today); weekEnd = weekEnd.AddDate(0, 0, 7) {
		seen := make(map[int32]struct{})
		var batch []int32
		for _, rent := range rents {
			if rent.ReturnDate.Before(weekStart) || rent.ReturnDate.After(weekEnd) {
				continue
			}
			if _, ok := seen[rent.DressID]; ok {
				continue
			}
			seen[rent.DressID] = struct{}{}
			batch = append(batch, rent.DressID)
		}
		if len(batch) > 0 {
			_, err := s.maintenance.CreateMaintenance(ctx, service.CreateMaintenanceInput{
				DressIDs: batch,
				Date:     weekEnd,
				Type:     s.pick([]string{domain.MaintenanceTypeCleaning, domain.MaintenanceTypeRepair, domain.MaintenanceTypeAlteration}),
				Cost:     int32(120 * len(batch)),
			})
			if err != nil {
				logger.Warn("Skipping maintenance batch", "week_end", weekEnd.Format("2006-01-02"), "error", err)
			}
		}
		weekStart = weekStart.AddDate(0, 0, 7)
	}
}

// createSales sells up to count dresses that covered their cost, at 70% of
// cost.
func (s *Seeder) createSales(ctx context.Context, customerIDs []int32, count int) {
	page := int32(1)
	sold := 0
	for sold < count {
		dresses, _, err := s.store.Dresses().List(ctx, repository.DressFilter{}, page, 200)
		if err != nil || len(dresses) == 0 {
			return
		}
		for _, dress := range dresses {
			if sold >= count {
				return
			}
			if !dress.Sellable || !dress.AvailableForSale() {
				continue
			}
			_, err := s.sales.CreateSale(ctx, service.CreateSaleInput{
				DressID:    dress.ID,
				CustomerID: customerIDs[s.rng.Intn(len(customerIDs))],
				SaleDate:   s.randomPastDate(30),
				SalePrice:  dress.Cost * 7 / 10,
			})
			if err != nil {
				continue
			}
			sold++
		}
		page++
	}
}
