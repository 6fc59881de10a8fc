package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"voyage/internal/models/response_models"
	"voyage/pkg/currency"
	"voyage/pkg/utils"
)

type ItineraryPDFServiceInterface interface {
	Render(result *response_models.ComprehensiveAnalysis, summary string) ([]byte, error)
}

type ItineraryPDFService struct {
	now func() time.Time
}

func NewItineraryPDFService() ItineraryPDFServiceInterface {
	return &ItineraryPDFService{now: time.Now}
}

// itineraryDoc wraps gofpdf with the section and row helpers used below.
// All text passes through tr since the core fonts are cp1252 only.
type itineraryDoc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (d itineraryDoc) section(title string) {
	d.pdf.Ln(3)
	d.pdf.SetFillColor(13, 24, 37)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.CellFormat(170, 8, "  "+d.tr(title), "", 1, "L", true, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(2)
}

func (d itineraryDoc) row(label, value string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.CellFormat(50, 6, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetTextColor(20, 20, 20)
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.MultiCell(120, 6, d.tr(value), "", "L", false)
}

func (d itineraryDoc) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(40, 40, 40)
	d.pdf.MultiCell(170, 5, d.tr(text), "", "L", false)
}

func (d itineraryDoc) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetTextColor(13, 24, 37)
	d.pdf.CellFormat(170, 7, d.tr(text), "", 1, "L", false, 0, "")
}

func (s *ItineraryPDFService) Render(result *response_models.ComprehensiveAnalysis, summary string) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: nothing to render", utils.ErrInvalidInput)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	doc := itineraryDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	analysis := result.Analysis
	destination := analysis.Destinations.Primary

	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, doc.tr("Voyage itinerary: "+destination), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Generated "+s.now().UTC().Format("02 Jan 2006, 15:04 UTC")+". Prices are estimates.", "", 1, "L", false, 0, "")
	pdf.SetY(34)

	doc.section("Trip Overview")
	doc.row("Destination", destination)
	if len(analysis.Destinations.Secondary) > 0 {
		doc.row("Also visiting", strings.Join(analysis.Destinations.Secondary, ", "))
	}
	doc.row("Travel type", analysis.TravelType)
	doc.row("Budget", analysis.Budget)
	doc.row("Duration", fmt.Sprintf("%d days (%s)", analysis.Duration.Days, analysis.Duration.Category))
	doc.row("Travelers", fmt.Sprintf("%d adults, %d children, %d infants",
		analysis.Travelers.Adults, analysis.Travelers.Children, analysis.Travelers.Infants))
	if analysis.Dates.Departure != nil {
		doc.row("Departure", *analysis.Dates.Departure)
	}
	if analysis.Dates.Return != nil {
		doc.row("Return", *analysis.Dates.Return)
	}

	recs := result.Recommendations
	if recs.Flights != nil && len(recs.Flights.Recommendations) > 0 {
		doc.section("Flights")
		for _, f := range recs.Flights.Recommendations {
			doc.heading(fmt.Sprintf("%s - %s", f.Airline, f.Route))
			doc.row("Schedule", fmt.Sprintf("%s to %s (%s, %s)", f.DepartureTime, f.ArrivalTime, f.Duration, stopsLabel(f.Stops)))
			doc.row("Fare", fmt.Sprintf("%s (USD %.0f), %s", pdfRupees(f.PriceINR), f.PriceUSD, f.Class))
		}
	}

	if len(recs.Hotels.Recommendations) > 0 {
		doc.section("Hotels")
		for _, h := range recs.Hotels.Recommendations {
			doc.heading(fmt.Sprintf("%s (%.1f/5)", h.Name, h.Rating))
			doc.row("Location", h.Location)
			doc.row("Per night", fmt.Sprintf("%s (USD %.0f)", pdfRupees(h.PricePerNightINR), h.PricePerNightUSD))
			doc.row("Check-in / out", h.CheckInTime+" / "+h.CheckOutTime)
		}
	}

	if len(recs.Restaurants.Recommendations) > 0 {
		doc.section("Restaurants")
		for _, r := range recs.Restaurants.Recommendations {
			doc.heading(fmt.Sprintf("%s - %s", r.Name, r.Cuisine))
			doc.row("Average meal", pdfRupees(r.AverageMealPriceINR))
			doc.row("Hours", r.OpeningHours)
		}
	}

	if len(recs.Places.Itinerary) > 0 {
		doc.section("Day by Day")
		for _, day := range recs.Places.Itinerary {
			doc.heading(day.Theme)
			for _, activity := range day.Activities {
				doc.paragraph("- " + activity)
			}
			doc.row("Estimated cost", pdfRupees(day.EstimatedCostINR))
		}
	}

	budget := recs.Places.BudgetBreakdown
	if budget.TotalEstimatedCostINR > 0 {
		doc.section("Budget")
		doc.row("Daily budget", pdfRupees(budget.DailyBudgetINR))
		doc.row("Total estimate", pdfRupees(budget.TotalEstimatedCostINR))
		for _, tip := range budget.CostSavingTips {
			doc.paragraph("- " + tip)
		}
	}

	if strings.TrimSpace(summary) != "" {
		doc.section("Summary")
		doc.paragraph(summary)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfRupees spells the currency out; the rupee sign is missing from cp1252.
func pdfRupees(amount response_models.Rupees) string {
	return "INR " + strings.TrimPrefix(currency.FormatINR(int(amount)), "₹")
}

func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "non-stop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}
