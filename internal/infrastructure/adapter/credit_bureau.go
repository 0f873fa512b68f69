package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/lenddesk/los/internal/domain/model"
)

// StubCreditBureauClient is a development/test adapter that derives a
// deterministic credit report from the business tax ID, adjusted for the
// declared credit history. It implements port.CreditBureauClient and allows
// repeatable underwriting scenarios without a live bureau connection.
type StubCreditBureauClient struct{}

// NewStubCreditBureauClient creates a new stub adapter.
func NewStubCreditBureauClient() *StubCreditBureauClient {
	return &StubCreditBureauClient{}
}

// FetchReport returns a deterministic report for the business. The base
// score falls in [300, 850]; declared bankruptcies and defaults pull it down.
func (c *StubCreditBureauClient) FetchReport(
	_ context.Context,
	applicationID string,
	business model.Business,
) (model.CreditReport, error) {
	if business.TaxID == "" {
		return model.CreditReport{}, fmt.Errorf("business tax ID is required")
	}

	h := sha256.Sum256([]byte(business.TaxID))
	num := binary.BigEndian.Uint32(h[:4])
	score := 300 + int(num%551) // range [300, 850]

	delinquencies := int(h[4] % 4)
	bankruptcies := 0
	if business.CreditHistory != nil {
		bankruptcies = business.CreditHistory.Bankruptcies
		score -= 100 * business.CreditHistory.Bankruptcies
		score -= 50 * business.CreditHistory.DefaultedLoans
		score -= 25 * (business.CreditHistory.Liens + business.CreditHistory.Judgments)
	}
	if score < 300 {
		score = 300
	}

	historyMonths := int(time.Since(business.DateEstablished).Hours() / 24 / 30)
	if historyMonths < 0 {
		historyMonths = 0
	}

	return model.NewCreditReport(
		applicationID,
		score,
		time.Now().UTC(),
		delinquencies,
		bankruptcies,
		float64(h[5]%80)/100.0,
		historyMonths,
	)
}
