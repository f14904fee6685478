// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import "fmt"

// ORCID v3.0 work JSON structures. Values are wrapped in {"value": ...}
// objects the way the registry API expects.

type stringValue struct {
	Value string `json:"value"`
}

// Payload is the request body for POST /v3.0/{orcid}/work.
type Payload struct {
	Title           payloadTitle         `json:"title"`
	JournalTitle    *stringValue         `json:"journal-title,omitempty"`
	Type            WorkType             `json:"type"`
	PublicationDate *payloadDate         `json:"publication-date,omitempty"`
	ExternalIDs     payloadExternalIDs   `json:"external-ids"`
	URL             *stringValue         `json:"url,omitempty"`
	Contributors    *payloadContributors `json:"contributors,omitempty"`
}

type payloadTitle struct {
	Title stringValue `json:"title"`
}

type payloadDate struct {
	Year  *stringValue `json:"year,omitempty"`
	Month *stringValue `json:"month,omitempty"`
	Day   *stringValue `json:"day,omitempty"`
}

type payloadExternalIDs struct {
	ExternalID []payloadExternalID `json:"external-id"`
}

type payloadExternalID struct {
	Type         string      `json:"external-id-type"`
	Value        string      `json:"external-id-value"`
	URL          stringValue `json:"external-id-url"`
	Relationship string      `json:"external-id-relationship"`
}

type payloadContributors struct {
	Contributor []payloadContributor `json:"contributor"`
}

type payloadContributor struct {
	ORCID      *payloadORCID         `json:"contributor-orcid,omitempty"`
	CreditName stringValue           `json:"credit-name"`
	Attributes payloadContributorAtt `json:"contributor-attributes"`
}

type payloadORCID struct {
	URI  string `json:"uri"`
	Path string `json:"path"`
	Host string `json:"host"`
}

type payloadContributorAtt struct {
	Sequence string `json:"contributor-sequence"`
	Role     string `json:"contributor-role"`
}

// Payload renders w as an ORCID v3.0 work. Date parts are emitted only to
// the precision w carries.
func (w Work) Payload() Payload {
	doi := BareDOI(w.DOI)
	p := Payload{
		Title: payloadTitle{Title: stringValue{w.Title}},
		Type:  w.Type,
		ExternalIDs: payloadExternalIDs{ExternalID: []payloadExternalID{{
			Type:         "doi",
			Value:        doi,
			URL:          stringValue{"https://doi.org/" + doi},
			Relationship: "self",
		}}},
	}
	if w.JournalTitle != "" {
		p.JournalTitle = &stringValue{w.JournalTitle}
	}
	if w.URL != "" {
		p.URL = &stringValue{w.URL}
	}
	if d := w.PublicationDate; !d.IsZero() {
		p.PublicationDate = &payloadDate{Year: &stringValue{fmt.Sprintf("%04d", d.Year)}}
		if d.Month != 0 {
			p.PublicationDate.Month = &stringValue{fmt.Sprintf("%02d", d.Month)}
		}
		if d.Day != 0 {
			p.PublicationDate.Day = &stringValue{fmt.Sprintf("%02d", d.Day)}
		}
	}
	if len(w.Contributors) > 0 {
		p.Contributors = &payloadContributors{}
		for i, c := range w.Contributors {
			pc := payloadContributor{
				CreditName: stringValue{c.CreditName},
				Attributes: payloadContributorAtt{Sequence: "additional", Role: "author"},
			}
			if i == 0 {
				pc.Attributes.Sequence = "first"
			}
			if c.ORCID != "" {
				pc.ORCID = &payloadORCID{URI: "https://orcid.org/" + c.ORCID, Path: c.ORCID, Host: "orcid.org"}
			}
			p.Contributors.Contributor = append(p.Contributors.Contributor, pc)
		}
	}
	return p
}
