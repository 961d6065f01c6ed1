package assemble

import (
	"loandraft/internal/draft/models"
	"loandraft/internal/ledger"
)

// Ledger idCode1 values for the supported identity documents.
const (
	IDCodeDriverLicence         = "DRVLSC"
	IDCodePassport              = "PASPRT"
	IDCodeFirearmsLicence       = "FIRLSC"
	IDCodeBirthCertificate      = "BTHCRT"
	IDCodeKiwiAccessCard        = "KIWACC"
	IDCodeCommunityServicesCard = "COMSVC"
	IDCodeGoldCard              = "GLDCRD"
	IDCodeStudentCard           = "STDCRD"
)

// IdentificationPriorityOrder fixes the output ordering of identification
// entries. Priority governs order only: every supplied document is included.
var IdentificationPriorityOrder = []string{
	IDCodeDriverLicence,
	IDCodePassport,
	IDCodeFirearmsLicence,
	IDCodeBirthCertificate,
	IDCodeKiwiAccessCard,
	IDCodeCommunityServicesCard,
	IDCodeGoldCard,
	IDCodeStudentCard,
}

func documentByCode(docs models.IdentificationDocuments, code string) models.IdentificationDocument {
	switch code {
	case IDCodeDriverLicence:
		return docs.DriverLicence
	case IDCodePassport:
		return docs.Passport
	case IDCodeFirearmsLicence:
		return docs.FirearmsLicence
	case IDCodeBirthCertificate:
		return docs.BirthCertificate
	case IDCodeKiwiAccessCard:
		return docs.KiwiAccessCard
	case IDCodeCommunityServicesCard:
		return docs.CommunityServicesCard
	case IDCodeGoldCard:
		return docs.GoldCard
	case IDCodeStudentCard:
		return docs.StudentCard
	}
	return models.IdentificationDocument{}
}

// SelectIdentifications maps the supplied documents onto ledger
// identification entries, ordered by IdentificationPriorityOrder. Documents
// with an empty number are skipped.
func SelectIdentifications(docs models.IdentificationDocuments) []ledger.Identification {
	out := make([]ledger.Identification, 0, len(IdentificationPriorityOrder))
	for _, code := range IdentificationPriorityOrder {
		doc := documentByCode(docs, code)
		if doc.Number == "" {
			continue
		}
		out = append(out, ledger.Identification{
			IDCode1:       code,
			Reference:     doc.Number,
			EffectiveDate: doc.EffectiveDate,
			ExpiryDate:    doc.ExpiryDate,
		})
	}
	return out
}
