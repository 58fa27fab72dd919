package mca

import (
	dErrors "ficlear/pkg/domain-errors"

	"ficlear/internal/company/models"
)

// sampleRegistry is the development dataset served when no MCA endpoint is
// configured. Figures are the published master data of well-known listed
// companies.
var sampleRegistry = map[string]rawRegistration{
	"L22210MH1995PLC084781": {
		CompanyName:       "Tata Consultancy Services Limited",
		CIN:               "L22210MH1995PLC084781",
		CompanyClass:      "IT Services & Consulting",
		IncorporationDate: "1995-08-25",
		CompanyType:       "Public Limited Company",
		CompanyStatus:     "Active",
		AuthorizedCapital: 850000000,
		PaidUpCapital:     371196875,
		RegisteredAddress: "9th Floor, Nirmal Building, Nariman Point, Mumbai, Maharashtra - 400021",
		Email:             "investor.relations@tcs.com",
		Directors:         []string{"N. Chandrasekaran", "Rajesh Gopinathan", "V. Ramakrishnan"},
	},
	"L65910MH1994PLC080618": {
		CompanyName:       "HDFC Bank Limited",
		CIN:               "L65910MH1994PLC080618",
		CompanyClass:      "Banking & Financial Services",
		IncorporationDate: "1994-08-30",
		CompanyType:       "Public Limited Company",
		CompanyStatus:     "Active",
		AuthorizedCapital: 7000000000,
		PaidUpCapital:     6086120690,
		RegisteredAddress: "HDFC Bank House, Senapati Bapat Marg, Lower Parel, Mumbai, Maharashtra - 400013",
		Email:             "investorrelations@hdfcbank.com",
		Directors:         []string{"Sashidhar Jagdishan", "Atanu Chakraborty", "Kaizad Bharucha"},
	},
	"L67120MH1958PLC011126": {
		CompanyName:       "ICICI Bank Limited",
		CIN:               "L67120MH1958PLC011126",
		CompanyClass:      "Banking & Financial Services",
		IncorporationDate: "1994-01-05",
		CompanyType:       "Public Limited Company",
		CompanyStatus:     "Active",
		AuthorizedCapital: 5500000000,
		PaidUpCapital:     1412918918,
		RegisteredAddress: "ICICI Bank Tower, Bandra Kurla Complex, Mumbai, Maharashtra - 400051",
		Email:             "shares@icicibank.com",
		Directors:         []string{"Sandeep Bakhshi", "Girish Chandra Chaturvedi", "Anup Bagchi"},
	},
	"L72900GJ1999PLC035648": {
		CompanyName:       "Infosys Limited",
		CIN:               "L72900GJ1999PLC035648",
		CompanyClass:      "IT Services & Consulting",
		IncorporationDate: "1981-07-02",
		CompanyType:       "Public Limited Company",
		CompanyStatus:     "Active",
		AuthorizedCapital: 7200000000,
		PaidUpCapital:     4240200000,
		RegisteredAddress: "Electronics City, Hosur Road, Bangalore, Karnataka - 560100",
		Email:             "investor_relations@infosys.com",
		Directors:         []string{"Salil Parekh", "Nandan Nilekani", "U B Pravin Rao"},
	},
	"L24100GJ1988PLC011652": {
		CompanyName:       "Reliance Industries Limited",
		CIN:               "L24100GJ1988PLC011652",
		CompanyClass:      "Oil & Gas, Petrochemicals",
		IncorporationDate: "1973-05-08",
		CompanyType:       "Public Limited Company",
		CompanyStatus:     "Active",
		AuthorizedCapital: 12000000000,
		PaidUpCapital:     6339432320,
		RegisteredAddress: "3rd Floor, Maker Chambers IV, Nariman Point, Mumbai, Maharashtra - 400021",
		Email:             "investor.relations@ril.com",
		Directors:         []string{"Mukesh D. Ambani", "Nikhil R. Meswani", "Hital R. Meswani"},
	},
	"U72900KA2003PTC031497": {
		CompanyName:       "Wipro Limited",
		CIN:               "U72900KA2003PTC031497",
		CompanyClass:      "IT Services & Consulting",
		IncorporationDate: "1945-12-29",
		CompanyType:       "Public Limited Company",
		CompanyStatus:     "Active",
		AuthorizedCapital: 3100000000,
		PaidUpCapital:     5103830000,
		RegisteredAddress: "Doddakannelli, Sarjapur Road, Bangalore, Karnataka - 560035",
		Email:             "investor.relations@wipro.com",
		Directors:         []string{"Thierry Delaporte", "Rishad Premji", "Azim Premji"},
	},
}

func (c *Client) lookupSample(cin string) (*models.Registration, error) {
	raw, ok := sampleRegistry[cin]
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "company %s not found in MCA records", cin)
	}
	return raw.toRegistration(), nil
}

// SampleCINs lists the CINs available in sample-data mode.
func SampleCINs() []string {
	cins := make([]string, 0, len(sampleRegistry))
	for cin := range sampleRegistry {
		cins = append(cins, cin)
	}
	return cins
}
