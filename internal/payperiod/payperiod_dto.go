package payperiod

const dateLayout = "2006-01-02"

type PayPeriodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func toResponse(p PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		StartDate: p.StartDate.Format(dateLayout),
		EndDate:   p.EndDate.Format(dateLayout),
	}
}
