package serp

import "testing"

func TestParseRow_Arity(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields int
		want       ListingEntry
	}{
		{
			name:       "four fields",
			body:       " Curso X ||| site.com ||| site.com/x ||| Aprenda já",
			wantFields: 4,
			want: ListingEntry{
				Title:          "Curso X",
				DisplayURL:     "site.com",
				DestinationURL: "site.com/x",
				Description:    "Aprenda já",
			},
		},
		{
			name:       "three fields",
			body:       " Curso X ||| site.com ||| site.com/x",
			wantFields: 3,
		},
		{
			name:       "five fields",
			body:       "a ||| b ||| c ||| d ||| e",
			wantFields: 5,
		},
		{
			name:       "empty fields still count",
			body:       "||||||||| ",
			wantFields: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fields := parseRow(tt.body)
			if fields != tt.wantFields {
				t.Fatalf("parseRow() fields = %d, want %d", fields, tt.wantFields)
			}
			if got != tt.want {
				t.Errorf("parseRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseListings(t *testing.T) {
	region := `**Anúncios (Google Ads):**
Ad: Ad One ||| one.com ||| https://one.com/a ||| First ad
Ad: Broken ||| two.com ||| https://two.com
Ad: Ad Two ||| two.com ||| https://two.com/b ||| Second ad

**Resultados Orgânicos:**
Organic: Org One ||| org1.com ||| https://org1.com ||| First organic
  Organic: Org Two ||| org2.com ||| https://org2.com ||| Indented organic
Organic: Too ||| many ||| fields ||| here ||| extra
Some heading that is ignored`

	block, issues := parseListings(region)

	wantAds := []string{"Ad One", "Ad Two"}
	if len(block.Ads) != len(wantAds) {
		t.Fatalf("ads = %d, want %d", len(block.Ads), len(wantAds))
	}
	for i, title := range wantAds {
		if block.Ads[i].Title != title {
			t.Errorf("ads[%d].Title = %q, want %q", i, block.Ads[i].Title, title)
		}
	}

	wantOrganic := []string{"Org One", "Org Two"}
	if len(block.Organic) != len(wantOrganic) {
		t.Fatalf("organic = %d, want %d", len(block.Organic), len(wantOrganic))
	}
	for i, title := range wantOrganic {
		if block.Organic[i].Title != title {
			t.Errorf("organic[%d].Title = %q, want %q", i, block.Organic[i].Title, title)
		}
	}

	if len(issues) != 2 {
		t.Fatalf("issues = %v, want 2", issues)
	}
	if issues[0].Kind != MalformedRow || issues[0].Line != 3 {
		t.Errorf("issues[0] = %+v, want malformed row on line 3", issues[0])
	}
	if issues[1].Line != 9 {
		t.Errorf("issues[1].Line = %d, want 9", issues[1].Line)
	}
}

func TestParseListings_EmptyRegion(t *testing.T) {
	block, issues := parseListings("")
	if block.Ads == nil || block.Organic == nil {
		t.Fatal("parseListings() must return non-nil sequences")
	}
	if !block.Empty() {
		t.Errorf("parseListings() block = %+v, want empty", block)
	}
	if len(issues) != 0 {
		t.Errorf("parseListings() issues = %v, want none", issues)
	}
}

func TestParseListings_CRLF(t *testing.T) {
	block, _ := parseListings("Ad: T ||| d ||| u ||| desc\r\nOrganic: O ||| d ||| u ||| desc\r\n")
	if len(block.Ads) != 1 || block.Ads[0].Description != "desc" {
		t.Errorf("ads = %+v, want one entry without carriage return", block.Ads)
	}
	if len(block.Organic) != 1 {
		t.Errorf("organic = %+v, want one entry", block.Organic)
	}
}

// Models often indent the rows under their headings; indentation is not part
// of the prefix.
func TestParseListings_IndentedRows(t *testing.T) {
	region := "**Anúncios (Google Ads):**\n    Ad: T ||| d ||| u ||| desc\n\tOrganic: O ||| d ||| u ||| desc\n  - Ad: bullet ||| d ||| u ||| desc\n"

	block, issues := parseListings(region)
	if len(block.Ads) != 1 || block.Ads[0].Title != "T" {
		t.Errorf("ads = %+v, want the indented row kept", block.Ads)
	}
	if len(block.Organic) != 1 || block.Organic[0].Title != "O" {
		t.Errorf("organic = %+v, want the tab-indented row kept", block.Organic)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}
