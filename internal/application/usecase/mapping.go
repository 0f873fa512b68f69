package usecase

import (
	"time"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/model"
)

func toApplicationResponse(app model.LoanApplication, docs []model.Document) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:               app.ID(),
		BusinessID:       app.BusinessID(),
		ProductID:        app.ProductID(),
		ProductVersion:   app.ProductVersion(),
		Status:           app.Status().String(),
		SubmissionDate:   app.SubmissionDate(),
		RequestedAmount:  app.RequestedAmount(),
		LoanPurpose:      app.LoanPurpose(),
		LoanTerm:         app.TermMonths(),
		CollateralType:   app.CollateralType(),
		CollateralValue:  app.CollateralValue(),
		ApplicantEmail:   app.ApplicantEmail(),
		ApprovedAmount:   app.ApprovedAmount(),
		InterestRate:     app.InterestRate(),
		DSCR:             app.DSCR(),
		UnderwriterNotes: app.UnderwriterNotes(),
	}
	if !app.LastReviewDate().IsZero() {
		reviewed := app.LastReviewDate()
		resp.LastReviewDate = &reviewed
	}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toDocumentResponse(doc))
	}
	return resp
}

func toDocumentResponse(doc model.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:            doc.ID,
		ApplicationID: doc.ApplicationID,
		DocumentType:  doc.DocumentType,
		FileLocation:  doc.FileLocation,
		UploadDate:    doc.UploadDate,
	}
}

func toCreditReportResponse(report model.CreditReport) dto.CreditReportResponse {
	return dto.CreditReportResponse{
		ApplicationID:       report.ApplicationID,
		CreditScore:         report.CreditScore,
		ReportDate:          report.ReportDate,
		Delinquencies:       report.Delinquencies,
		Bankruptcies:        report.Bankruptcies,
		CreditUtilization:   report.CreditUtilization,
		CreditHistoryMonths: report.CreditHistoryMonths,
	}
}

func toDecisionResponse(d model.UnderwritingDecision) dto.DecisionResponse {
	return dto.DecisionResponse{
		ApplicationID:    d.ApplicationID,
		Decision:         string(d.Decision),
		DecisionDate:     d.DecisionDate,
		ApprovedAmount:   d.ApprovedAmount,
		InterestRate:     d.InterestRate,
		Term:             d.TermMonths,
		DSCR:             d.DSCR,
		Conditions:       d.Conditions,
		ReasonCodes:      d.ReasonCodes,
		UnderwriterNotes: d.UnderwriterNotes,
	}
}

func toProductResponse(p model.LoanProduct) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:        p.ProductID,
		VersionNumber:    p.VersionNumber,
		ProductName:      p.ProductName,
		ProductType:      p.ProductType,
		MinLoanAmount:    p.MinLoanAmount,
		MaxLoanAmount:    p.MaxLoanAmount,
		InterestRateType: string(p.InterestRateType),
		BaseInterestRate: p.BaseInterestRate,
		TermOptions:      p.TermOptions,
		EligibilityCriteria: dto.EligibilityCriteriaInput{
			MinCreditScore: p.EligibilityCriteria.MinCreditScore,
			Conditions:     p.EligibilityCriteria.Conditions,
		},
		Fees:                   p.Fees,
		CollateralRequirements: p.CollateralRequirements,
		UnderwritingGuidelines: p.UnderwritingGuidelines,
		Status:                 p.Status.String(),
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func toProductResponses(products []model.LoanProduct) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toScheduleResponse(entries []model.AmortizationEntry) []dto.AmortizationEntryResponse {
	out := make([]dto.AmortizationEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AmortizationEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Principal:        e.Principal,
			Interest:         e.Interest,
			Total:            e.Total,
			RemainingBalance: e.RemainingBalance,
		})
	}
	return out
}

// nowUTC is indirected for deterministic tests.
var nowUTC = func() time.Time { return time.Now().UTC() }
