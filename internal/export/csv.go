// Package export renders inventory data as CSV for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"cordelia-backend/internal/domain"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// WriteDresses streams the dress inventory as CSV.
func WriteDresses(w io.Writer, dresses []domain.Dress) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "size", "color", "style", "brand", "description",
		"cost", "market_price", "rent_price", "rents_for_returns",
		"times_rented", "sellable", "rent_status", "maintenance_status",
		"sold", "date_added",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, d := range dresses {
		row := []string{
			strconv.FormatInt(int64(d.ID), 10),
			strconv.FormatInt(int64(d.Size), 10),
			d.Color,
			d.Style,
			d.Brand,
			d.Description,
			strconv.FormatInt(int64(d.Cost), 10),
			strconv.FormatInt(int64(d.MarketPrice), 10),
			strconv.FormatInt(int64(d.RentPrice), 10),
			strconv.FormatInt(int64(d.RentsForReturns), 10),
			strconv.FormatInt(int64(d.TimesRented), 10),
			formatBool(d.Sellable),
			formatBool(d.RentStatus),
			formatBool(d.MaintenanceStatus),
			formatBool(d.Sold),
			formatDate(d.DateAdded),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCustomers streams the customer roster as CSV.
func WriteCustomers(w io.Writer, customers []domain.Customer) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "email", "name", "last_name", "phone_number", "busy", "date_added"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range customers {
		row := []string{
			strconv.FormatInt(int64(c.ID), 10),
			c.Email,
			c.Name,
			c.LastName,
			c.PhoneNumber,
			formatBool(c.Busy),
			formatDate(c.DateAdded),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRents streams the rent history as CSV.
func WriteRents(w io.Writer, rents []domain.Rent) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "dress_id", "customer_id", "rent_date", "return_date", "payment_method", "payment_total"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rents {
		row := []string{
			strconv.FormatInt(int64(r.ID), 10),
			strconv.FormatInt(int64(r.DressID), 10),
			strconv.FormatInt(int64(r.CustomerID), 10),
			formatDate(r.RentDate),
			formatDate(r.ReturnDate),
			r.PaymentMethod,
			strconv.FormatInt(int64(r.PaymentTotal), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMaintenances streams the maintenance history as CSV. The dress ids of
// each batch are joined into one column.
func WriteMaintenances(w io.Writer, maintenances []domain.Maintenance) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "date", "return_date", "maintenance_type", "cost", "dress_ids"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, m := range maintenances {
		ids := make([]string, len(m.DressIDs))
		for i, id := range m.DressIDs {
			ids[i] = strconv.FormatInt(int64(id), 10)
		}
		row := []string{
			strconv.FormatInt(int64(m.ID), 10),
			formatDate(m.Date),
			formatDate(m.ReturnDate),
			m.Type,
			strconv.FormatInt(int64(m.Cost), 10),
			strings.Join(ids, " "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSales streams the sale history as CSV.
func WriteSales(w io.Writer, sales []domain.Sale) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "dress_id", "customer_id", "sale_date", "sale_price"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range sales {
		row := []string{
			strconv.FormatInt(int64(s.ID), 10),
			strconv.FormatInt(int64(s.DressID), 10),
			strconv.FormatInt(int64(s.CustomerID), 10),
			formatDate(s.SaleDate),
			strconv.FormatInt(int64(s.SalePrice), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
