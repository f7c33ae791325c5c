package services

import (
	"fmt"
	"net/url"
	"strings"

	"travelend/internal/models/data_models"
	"travelend/internal/models/request_models"
	"travelend/internal/models/response_models"
	"travelend/internal/repositories"
	mem "travelend/pkg/memcache"
	"travelend/pkg/utils"
)

const notSpecified = "Not specified"

// ComposerConfig carries the agency contact values the composer needs. It is
// injected at construction so the composer never reads ambient state.
type ComposerConfig struct {
	SiteName        string // e.g. "TravelEnd", suffixed to every message
	HomeCity        string
	ContactPhone    string // may contain +, spaces, punctuation
	WhatsAppBaseURL string // e.g. "https://wa.me"
}

type InquiryServiceInterface interface {
	// ComposeMessage and BuildHandoffLink are pure formatters; they accept
	// partially filled sessions so the caller can render live previews.
	ComposeMessage(session *data_models.PlanningSession, estimate data_models.EstimateResult) string
	BuildHandoffLink(message string) string

	BuildPlannerInquiry(sessionID string) (*response_models.InquiryResponse, error)
	BuildCollegeTripInquiry(req request_models.CollegeTripInquiryRequest) *response_models.InquiryResponse
	BuildTaxiTariffInquiry(req request_models.TaxiTariffInquiryRequest) *response_models.InquiryResponse
}

type InquiryService struct {
	cfg         ComposerConfig
	store       mem.SessionStore
	catalogRepo repositories.CatalogRepository
	estimates   EstimateServiceInterface
}

func NewInquiryService(
	cfg ComposerConfig,
	store mem.SessionStore,
	catalogRepo repositories.CatalogRepository,
	estimates EstimateServiceInterface,
) InquiryServiceInterface {
	return &InquiryService{
		cfg:         cfg,
		store:       store,
		catalogRepo: catalogRepo,
		estimates:   estimates,
	}
}

func (i *InquiryService) ComposeMessage(session *data_models.PlanningSession, estimate data_models.EstimateResult) string {
	var b strings.Builder

	b.WriteString("*NEW TRIP INQUIRY*\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "*Trip Type:* %s\n", session.TripCategory.Title())
	fmt.Fprintf(&b, "*From:* %s\n", orNotSpecified(session.Origin))
	fmt.Fprintf(&b, "*To:* %s\n", i.destinationLine(session))
	fmt.Fprintf(&b, "*Pickup Time:* %s\n", orNotSpecified(session.PickupTime))
	fmt.Fprintf(&b, "*Duration:* %d Day(s), %d Night(s)\n", session.Days, session.Nights)
	fmt.Fprintf(&b, "*Group Size:* %d Person(s)\n", session.PersonCount)
	b.WriteString("\n*Selected Options:*\n")
	b.WriteString(i.addOnLines(session))
	b.WriteString("\n")
	fmt.Fprintf(&b, "\n*Estimated Price:* %s\n", utils.FormatINR(estimate.GrandTotal))
	fmt.Fprintf(&b, "\n_Generated via %s Planner_", i.cfg.SiteName)

	return b.String()
}

// destinationLine lists catalog picks first, in selection order, then the
// free-text customs, each flagged as unpriced. A zero-price catalog pick is
// listed by name with no figure attached.
func (i *InquiryService) destinationLine(session *data_models.PlanningSession) string {
	names := make([]string, 0, len(session.SelectedDestinationIDs)+len(session.CustomDestinationNames))
	for _, id := range session.SelectedDestinationIDs {
		destination, err := i.catalogRepo.GetDestination(session.TripCategory, id)
		if err != nil {
			continue // stale id from a mid-switch selection; skip silently
		}
		names = append(names, destination.Name)
	}
	for _, custom := range session.CustomDestinationNames {
		names = append(names, custom+" (custom, price on request)")
	}
	if len(names) == 0 {
		return notSpecified
	}
	return strings.Join(names, ", ")
}

func (i *InquiryService) addOnLines(session *data_models.PlanningSession) string {
	lines := make([]string, 0, len(session.SelectedAddOnIDs))
	for _, addOn := range i.catalogRepo.GetAddOns() {
		if !session.HasAddOnSelected(addOn.ID) {
			continue
		}
		label := addOn.Label
		if addOn.PricingMode == data_models.PricingPerNight {
			label = fmt.Sprintf("%s (%s, %d Room(s))", addOn.Label, session.AccommodationTier.Label(), session.RoomCount)
		}
		lines = append(lines, "- "+label)
	}
	if len(lines) == 0 {
		return "- None"
	}
	return strings.Join(lines, "\n")
}

// BuildHandoffLink percent-encodes the message into the wa.me deep link. The
// phone segment is stripped to bare digits. Opening the link is the caller's
// side effect, not this service's.
func (i *InquiryService) BuildHandoffLink(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("%s/%s?text=%s", i.cfg.WhatsAppBaseURL, utils.DigitsOnly(i.cfg.ContactPhone), encoded)
}

func (i *InquiryService) BuildPlannerInquiry(sessionID string) (*response_models.InquiryResponse, error) {
	session, ok := i.store.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	estimate, err := i.estimates.ComputeEstimate(session)
	if err != nil {
		return nil, err
	}

	message := i.ComposeMessage(session, estimate)
	return &response_models.InquiryResponse{
		Message:      message,
		WhatsAppLink: i.BuildHandoffLink(message),
	}, nil
}

func (i *InquiryService) BuildCollegeTripInquiry(req request_models.CollegeTripInquiryRequest) *response_models.InquiryResponse {
	personCount := req.PersonCount
	if personCount < 1 {
		personCount = 30
	}
	days := req.Days
	if days < 1 {
		days = 1
	}

	var b strings.Builder
	b.WriteString("*NEW IV / COLLEGE TRIP INQUIRY*\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "*Name:* %s\n", orNotSpecified(req.Name))
	fmt.Fprintf(&b, "*Institution:* %s\n", orNotSpecified(req.Institution))
	fmt.Fprintf(&b, "*Department:* %s\n", orNotSpecified(req.Department))
	fmt.Fprintf(&b, "*Group Size:* %d Students/Staff\n", personCount)
	fmt.Fprintf(&b, "*Duration:* %d Day(s)\n", days)
	fmt.Fprintf(&b, "*Target Destination:* %s\n", orNotSpecified(req.Destination))
	fmt.Fprintf(&b, "*Contact:* %s\n", orNotSpecified(req.Mobile))
	fmt.Fprintf(&b, "\n_Generated via %s College Planner_", i.cfg.SiteName)

	message := b.String()
	return &response_models.InquiryResponse{
		Message:      message,
		WhatsAppLink: i.BuildHandoffLink(message),
	}
}

func (i *InquiryService) BuildTaxiTariffInquiry(req request_models.TaxiTariffInquiryRequest) *response_models.InquiryResponse {
	days := req.Days
	if days < 1 {
		days = 1
	}
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}
	children := req.Children
	if children < 0 {
		children = 0
	}
	vehicle := strings.TrimSpace(req.VehicleType)
	if vehicle == "" {
		vehicle = "Sedan (4 Seater)"
	}

	var b strings.Builder
	b.WriteString("*TAXI TARIFF INQUIRY*\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "*From:* %s\n", orNotSpecified(req.From))
	fmt.Fprintf(&b, "*To:* %s\n", orNotSpecified(req.To))
	fmt.Fprintf(&b, "*Opening Timing:* %s\n", orNotSpecified(req.OpeningTiming))
	fmt.Fprintf(&b, "*Closing Timing:* %s\n", orNotSpecified(req.ClosingTiming))
	fmt.Fprintf(&b, "*Duration:* %d Day(s)\n", days)
	fmt.Fprintf(&b, "*Passengers:* %d Adult(s), %d Child(ren)\n", adults, children)
	fmt.Fprintf(&b, "*Vehicle Type:* %s\n", vehicle)
	b.WriteString("\n----------------------------\n")
	fmt.Fprintf(&b, "_Generated via %s Taxi Tariff_", i.cfg.SiteName)

	message := b.String()
	return &response_models.InquiryResponse{
		Message:      message,
		WhatsAppLink: i.BuildHandoffLink(message),
	}
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return notSpecified
	}
	return value
}
