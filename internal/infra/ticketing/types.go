package ticketing

// Raw wire types for the discovery API. Only the fields the formatter reads
// are declared; the API returns far more.

type searchResponse struct {
	Embedded *struct {
		Events []rawEvent `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}

type classificationsResponse struct {
	Embedded *struct {
		Classifications []rawClassification `json:"classifications"`
	} `json:"_embedded"`
}

type rawClassification struct {
	Segment *struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Embedded *struct {
			Genres []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"genres"`
		} `json:"_embedded"`
	} `json:"segment"`
}

type rawEvent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Images []struct {
		URL    string `json:"url"`
		Ratio  string `json:"ratio"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"images"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	Classifications []struct {
		Segment struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"segment"`
		Genre struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`
	PriceRanges []struct {
		Currency string  `json:"currency"`
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
	} `json:"priceRanges"`
	Embedded *struct {
		Venues []rawVenue `json:"venues"`
	} `json:"_embedded"`
}

type rawVenue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	PostalCode string `json:"postalCode"`
	Address    struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
	Location struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}
