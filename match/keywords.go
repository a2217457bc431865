// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package match

// KeywordRule associates a standard document label with the phrases that
// reinforce it. A candidate earns the flat keyword bonus when its file
// name contains the lowercased label, or its content contains any of the
// keywords. The first matching rule wins; bonuses never accumulate.
type KeywordRule struct {
	Label    string
	Keywords []string
}

// Category binds a registry name to a template directory and its keyword
// table. Category data is immutable configuration.
type Category struct {
	Name  string // registry key, e.g. "contracts"
	Dir   string // subdirectory under the templates root
	Rules []KeywordRule
}

// Categories returns the seven template categories. The slice and its
// contents must not be modified by callers.
func Categories() []Category {
	return []Category{
		{
			Name: "contracts",
			Dir:  "contract_templates",
			Rules: []KeywordRule{
				{Label: "Affiliate Agreement", Keywords: []string{"affiliate agreement", "confidentiality"}},
				{Label: "Co-branding Agreement", Keywords: []string{"co-branding agreement", "co-branding"}},
				{Label: "Joint Venture Agreement", Keywords: []string{"joint venture agreement", "joint venture"}},
			},
		},
		{
			Name: "criminal",
			Dir:  "criminal_litigation_templates",
			Rules: []KeywordRule{
				{Label: "FIR", Keywords: []string{"first information report", "fir", "complaint"}},
				{Label: "Bail Application", Keywords: []string{"bail application", "anticipatory bail", "regular bail"}},
				{Label: "Bail Bond", Keywords: []string{"bail bond", "personal bond"}},
				{Label: "Surety Bond", Keywords: []string{"surety", "surety bond"}},
				{Label: "Charge Sheet", Keywords: []string{"charge sheet", "chargesheet", "final report"}},
				{Label: "Sentencing Application", Keywords: []string{"sentencing", "sentence", "punishment"}},
			},
		},
		{
			Name: "civil",
			Dir:  "civil_litigation_templates",
			Rules: []KeywordRule{
				{Label: "Address Form", Keywords: []string{"address form", "party address"}},
				{Label: "Vakalatnama", Keywords: []string{"vakalatnama", "power of attorney"}},
				{Label: "Memo of Appearance", Keywords: []string{"memo of appearance", "appearance"}},
				{Label: "Memorandum of Appearance", Keywords: []string{"memorandum of appearance"}},
				{Label: "Inspection Form", Keywords: []string{"inspection", "record inspection"}},
				{Label: "Case Information Format", Keywords: []string{"case information", "case details"}},
				{Label: "Index Form", Keywords: []string{"index", "index of documents"}},
				{Label: "List of Documents", Keywords: []string{"list of documents", "documents annexed"}},
				{Label: "Notice to Produce", Keywords: []string{"notice to produce", "produce documents"}},
				{Label: "Process Fee", Keywords: []string{"process fee", "court process fee"}},
				{Label: "Commercial Court Forms", Keywords: []string{"commercial court", "commercial litigation"}},
			},
		},
		{
			Name: "commercial",
			Dir:  "commercial_templates",
			Rules: []KeywordRule{
				{Label: "CA Form", Keywords: []string{"ca form", "commercial application"}},
				{Label: "CA Form 7", Keywords: []string{"ca form 7", "commercial application 7"}},
				{Label: "Commercial Court Filing", Keywords: []string{"commercial court", "commercial filing"}},
				{Label: "Commercial Court Rules", Keywords: []string{"commercial court rules", "commercial rules"}},
				{Label: "Statement of Claim", Keywords: []string{"statement of claim", "soc"}},
				{Label: "Written Statement", Keywords: []string{"written statement", "defence"}},
				{Label: "Commercial Summary Suit", Keywords: []string{"summary suit", "commercial summary"}},
			},
		},
		{
			Name: "common",
			Dir:  "common_litigation_templates",
			Rules: []KeywordRule{
				{Label: "Vakalatnama", Keywords: []string{"vakalatnama", "power of attorney"}},
				{Label: "Process Fee", Keywords: []string{"process fee", "court fee"}},
				{Label: "E-Court Fee", Keywords: []string{"e court fee", "court fee"}},
				{Label: "Inspection Form", Keywords: []string{"inspection", "record inspection"}},
				{Label: "Memo of Appearance", Keywords: []string{"memo of appearance", "appearance"}},
				{Label: "Address Form", Keywords: []string{"address form", "party address"}},
				{Label: "List of Documents", Keywords: []string{"list of documents", "annexures"}},
				{Label: "Filing Form", Keywords: []string{"filing form", "court filing"}},
			},
		},
		{
			Name: "writs",
			Dir:  "writ_templates",
			Rules: []KeywordRule{
				{Label: "Habeas Corpus", Keywords: []string{"habeas corpus", "illegal detention"}},
				{Label: "Mandamus", Keywords: []string{"mandamus", "public duty", "direction"}},
				{Label: "Certiorari", Keywords: []string{"certiorari", "quash order"}},
				{Label: "Prohibition", Keywords: []string{"prohibition", "restrain proceedings"}},
				{Label: "Quo Warranto", Keywords: []string{"quo warranto", "authority of office"}},
				{Label: "Writ Petition", Keywords: []string{"writ petition", "article 226", "article 32"}},
			},
		},
		{
			Name: "family",
			Dir:  "family_law_templates",
			Rules: []KeywordRule{
				{Label: "Divorce", Keywords: []string{"divorce", "dissolution of marriage"}},
				{Label: "Judicial Separation", Keywords: []string{"judicial separation"}},
				{Label: "Maintenance", Keywords: []string{"maintenance", "section 125", "alimony"}},
				{Label: "Adoption", Keywords: []string{"adoption", "adoptive parent"}},
				{Label: "Guardianship", Keywords: []string{"guardianship", "minor child"}},
				{Label: "Domestic Violence", Keywords: []string{"domestic violence", "protection order"}},
				{Label: "Restitution of Conjugal Rights", Keywords: []string{"restitution", "conjugal rights"}},
				{Label: "Family Court Petition", Keywords: []string{"family court", "marriage act"}},
			},
		},
	}
}
