package fixtures

import (
	"time"

	"entitled/models"
)

// Default builds the bundled dataset. The records mirror the demo
// transaction file the product ships with; they are read-only from the
// Store's point of view.
func Default() *Store {
	return New(Dataset{
		Emails:        defaultEmails(),
		Properties:    defaultProperties(),
		Contacts:      defaultContacts(),
		Requirements:  defaultRequirements(),
		Documents:     defaultDocuments(),
		Tabs:          defaultTabs(),
		FilterGroups:  defaultFilterGroups(),
		Notifications: defaultNotifications(),
	})
}

func defaultEmails() []models.Email {
	return []models.Email{
		{
			ID:             "1",
			Sender:         "bryan@scalablelegal.com",
			Recipient:      "r.primero@scalablelegal.com",
			Subject:        "Closing Confirmation",
			Content:        "Yes our closing is still on, I think $5000 for the repairs is fine. Please call me tomorrow to finalize the other details.",
			Timestamp:      "1 day, 2 hours ago",
			IsRead:         true,
			HasAttachments: true,
			IsEncrypted:    true,
			Cc:             []string{"r.primero@scalablelegal.com"},
			Tags:           []string{"NEW ENCRYPTED", "CLOSING"},
			Priority:       models.PriorityHigh,
			Category:       "Transaction",
			Status:         models.EmailPending,
			IsStarred:      true,
			Attachments: []models.Attachment{
				{ID: "1", Name: "$500 Invoice332.pdf", Type: "pdf", Size: "245KB", URL: "#", MimeType: "application/pdf"},
				{ID: "2", Name: "image.png", Type: "image", Size: "1.2MB", URL: "#", MimeType: "image/png"},
			},
		},
		{
			ID:             "2",
			Sender:         "Alex Tsibulski",
			Recipient:      "user@example.com",
			Subject:        "Property Update - 123 Main Street",
			Content:        "Alex read 30 minutes ago. The property inspection has been completed and all requirements have been met.",
			Timestamp:      "1 day, 2 hours ago",
			IsRead:         true,
			HasAttachments: false,
			Tags:           []string{"PROPERTY", "INSPECTION"},
			Priority:       models.PriorityMedium,
			Category:       "Property",
			Status:         models.EmailCompleted,
		},
		{
			ID:             "3",
			Sender:         "Kristin Watson",
			Recipient:      "user@example.com",
			Subject:        "Document Review Required",
			Content:        "Please review the attached documents for the property transaction. There are several items that need your attention.",
			Timestamp:      "2 days ago",
			IsRead:         false,
			HasAttachments: true,
			Tags:           []string{"DOCUMENT", "REVIEW"},
			Priority:       models.PriorityHigh,
			Category:       "Document",
			Status:         models.EmailPending,
			Attachments: []models.Attachment{
				{ID: "3", Name: "Property_Review.pdf", Type: "pdf", Size: "1.8MB", URL: "#", MimeType: "application/pdf"},
			},
		},
		{
			ID:             "4",
			Sender:         "Annette Black",
			Recipient:      "user@example.com",
			Subject:        "Meeting Schedule - Property Discussion",
			Content:        "Let's schedule a meeting to discuss the property details and next steps. I have some concerns about the timeline.",
			Timestamp:      "3 days ago",
			IsRead:         false,
			HasAttachments: false,
			Tags:           []string{"MEETING", "SCHEDULE"},
			Priority:       models.PriorityMedium,
			Category:       "Meeting",
			Status:         models.EmailPending,
		},
		{
			ID:             "5",
			Sender:         "Richard Primero",
			Recipient:      "user@example.com",
			Subject:        "Tax Assessment Update",
			Content:        "The tax assessment for 123 Main Street has been completed. The new assessment value is $485,000.",
			Timestamp:      "4 days ago",
			IsRead:         true,
			HasAttachments: true,
			Tags:           []string{"TAX", "ASSESSMENT"},
			Priority:       models.PriorityLow,
			Category:       "Tax",
			Status:         models.EmailCompleted,
			Attachments: []models.Attachment{
				{ID: "5", Name: "Tax_Assessment_2024.pdf", Type: "pdf", Size: "2.1MB", URL: "#", MimeType: "application/pdf"},
			},
		},
	}
}

func defaultProperties() []models.Property {
	return []models.Property{
		{
			ID:               "1",
			Address:          "123 Main Street",
			City:             "New York",
			State:            "NY",
			Zip:              "10001",
			SalePrice:        500000,
			MortgageAmount:   450000,
			OwnersInsurance:  350000,
			Lenders:          "Fidelity",
			Loan:             "Conventional",
			Policy:           "Standard",
			PropertyType:     "residential",
			SquareFootage:    2500,
			Bedrooms:         3,
			Bathrooms:        2,
			YearBuilt:        1985,
			LotSize:          0.25,
			Zoning:           "R-2",
			TaxAssessedValue: 485000,
			Status:           models.PropertyActive,
			Neighborhood:     "Downtown",
			SchoolDistrict:   "NYC District 2",
			Utilities:        []string{"Electric", "Water", "Gas", "Sewer"},
			Features:         []string{"Hardwood Floors", "Central AC", "Garage", "Fireplace"},
			Notes:            "Prime location with excellent potential for appreciation",
			CreatedAt:        "2024-01-15",
			UpdatedAt:        "2024-01-20",
		},
		{
			ID:             "2",
			Address:        "42 Main Street",
			City:           "New York",
			State:          "NY",
			Zip:            "10001",
			PropertyType:   "residential",
			SquareFootage:  1800,
			Bedrooms:       2,
			Bathrooms:      1,
			YearBuilt:      1990,
			Status:         models.PropertyPending,
			Neighborhood:   "Midtown",
			SchoolDistrict: "NYC District 2",
		},
		{
			ID:            "3",
			Address:       "46 Main Street",
			City:          "New York",
			State:         "NY",
			Zip:           "10001",
			PropertyType:  "commercial",
			SquareFootage: 5000,
			YearBuilt:     1975,
			Status:        models.PropertyOffMarket,
			Neighborhood:  "Business District",
			Zoning:        "C-1",
		},
	}
}

func defaultContacts() []models.Contact {
	return []models.Contact{
		{
			ID:               "1",
			Name:             "Matt Blaine",
			Email:            "matt@blaine.com",
			Phone:            "(555) 123-4567",
			Role:             "Attorney",
			IsPrimary:        true,
			Notes:            "Primary attorney for all property transactions",
			Company:          "Blaine & Associates Law",
			Title:            "Senior Partner",
			Address:          "123 Legal Street, New York, NY 10001",
			City:             "New York",
			State:            "NY",
			Zip:              "10001",
			Country:          "USA",
			Website:          "www.blainelaw.com",
			Status:           "active",
			Source:           "Referral",
			LastContactDate:  "2024-01-20",
			NextFollowUpDate: "2024-01-27",
			Tags:             []string{"Attorney", "Primary", "Property Law"},
			CreatedAt:        "2024-01-01",
			UpdatedAt:        "2024-01-20",
		},
		{
			ID:               "2",
			Name:             "John Smith",
			Email:            "john@smith.com",
			Phone:            "(333) 333-4423",
			Role:             "Realtor",
			IsPrimary:        true,
			Notes:            "Usually easier to reach John through his secretary.",
			Company:          "Smith Real Estate",
			Title:            "Licensed Realtor",
			Address:          "456 Real Estate Ave, New York, NY 10001",
			City:             "New York",
			State:            "NY",
			Zip:              "10001",
			Country:          "USA",
			Status:           "active",
			Source:           "Direct",
			LastContactDate:  "2024-01-19",
			NextFollowUpDate: "2024-01-26",
			Tags:             []string{"Realtor", "Primary", "Sales"},
			CreatedAt:        "2024-01-01",
			UpdatedAt:        "2024-01-19",
		},
		{
			ID:              "3",
			Name:            "John Surveyor",
			Email:           "john@surveyor.com",
			Phone:           "(555) 987-6543",
			Role:            "Surveyor",
			IsPrimary:       false,
			Notes:           "Professional land surveyor with 15+ years experience",
			Company:         "Precision Surveying Co.",
			Title:           "Senior Surveyor",
			Address:         "789 Survey Lane, New York, NY 10001",
			City:            "New York",
			State:           "NY",
			Zip:             "10001",
			Country:         "USA",
			Status:          "active",
			Source:          "Professional Directory",
			LastContactDate: "2024-01-18",
			Tags:            []string{"Surveyor", "Technical", "Land Survey"},
			CreatedAt:       "2024-01-01",
			UpdatedAt:       "2024-01-18",
		},
		{
			ID:              "4",
			Name:            "Cody Fisher",
			Email:           "cody@fisher.com",
			Phone:           "(555) 456-7890",
			Role:            "Assistant",
			IsPrimary:       false,
			Notes:           "John Smith's personal assistant",
			Company:         "Smith Real Estate",
			Title:           "Executive Assistant",
			Status:          "active",
			Source:          "Internal",
			LastContactDate: "2024-01-20",
			Tags:            []string{"Assistant", "Support", "Internal"},
			CreatedAt:       "2024-01-01",
			UpdatedAt:       "2024-01-20",
		},
	}
}

func defaultRequirements() []models.Requirement {
	return []models.Requirement{
		{
			ID:            "1",
			PropertyID:    "1",
			Number:        "10",
			Details:       "This is a requirement or exception that needs to be addressed before closing can proceed.",
			Code:          "R1234",
			Instrument:    "+Add",
			OlLp:          "OP",
			Status:        models.RequirementPending,
			Priority:      models.PriorityHigh,
			AssignedTo:    "Matt Blaine",
			DueDate:       "2024-02-01",
			Category:      "Title",
			IsBoilerplate: false,
			IsCustom:      true,
			CreatedAt:     "2024-01-15",
			UpdatedAt:     "2024-01-20",
		},
		{
			ID:            "2",
			PropertyID:    "1",
			Number:        "11",
			Details:       "Property survey must be completed and approved by all parties.",
			Code:          "R1235",
			Instrument:    "+Add",
			OlLp:          "OP",
			Status:        models.RequirementCompleted,
			Priority:      models.PriorityMedium,
			AssignedTo:    "John Surveyor",
			DueDate:       "2024-01-25",
			CompletedDate: "2024-01-20",
			Category:      "Survey",
			IsBoilerplate: true,
			IsCustom:      false,
			CreatedAt:     "2024-01-15",
			UpdatedAt:     "2024-01-20",
		},
		{
			ID:            "3",
			PropertyID:    "1",
			Number:        "12",
			Details:       "Home inspection report must be reviewed and any issues addressed.",
			Code:          "R1236",
			Instrument:    "+Add",
			OlLp:          "LP",
			Status:        models.RequirementPending,
			Priority:      models.PriorityHigh,
			AssignedTo:    "John Smith",
			DueDate:       "2024-01-30",
			Category:      "Inspection",
			IsBoilerplate: false,
			IsCustom:      true,
			CreatedAt:     "2024-01-15",
			UpdatedAt:     "2024-01-20",
		},
	}
}

func defaultDocuments() []models.Document {
	return []models.Document{
		{
			ID:           "1",
			Name:         "Property_Deed.pdf",
			Type:         "pdf",
			Size:         "2.5MB",
			URL:          "#",
			Category:     "Legal",
			Tags:         []string{"Deed", "Legal", "Property"},
			UploadedBy:   "Matt Blaine",
			UploadedAt:   "2024-01-15",
			LastModified: "2024-01-15",
			Version:      "1.0",
			Status:       "approved",
		},
		{
			ID:           "2",
			Name:         "Survey_Report.pdf",
			Type:         "pdf",
			Size:         "1.8MB",
			URL:          "#",
			Category:     "Survey",
			Tags:         []string{"Survey", "Technical", "Property"},
			UploadedBy:   "John Surveyor",
			UploadedAt:   "2024-01-18",
			LastModified: "2024-01-18",
			Version:      "1.0",
			Status:       "approved",
		},
		{
			ID:           "3",
			Name:         "Inspection_Report.pdf",
			Type:         "pdf",
			Size:         "3.2MB",
			URL:          "#",
			Category:     "Inspection",
			Tags:         []string{"Inspection", "Property", "Condition"},
			UploadedBy:   "Alex Tsibulski",
			UploadedAt:   "2024-01-19",
			LastModified: "2024-01-19",
			Version:      "1.0",
			Status:       "review",
		},
	}
}

func defaultTabs() []models.Tab {
	return []models.Tab{
		{
			ID:           "1",
			Label:        "123 Main Street",
			IsActive:     true,
			PropertyID:   "1",
			Type:         "property",
			Badge:        "Active",
			IsClosable:   true,
			Order:        1,
			LastAccessed: "2024-01-20T10:30:00Z",
		},
		{
			ID:           "2",
			Label:        "42 Main Street",
			IsActive:     false,
			PropertyID:   "2",
			Type:         "property",
			Badge:        "Pending",
			IsClosable:   true,
			Order:        2,
			LastAccessed: "2024-01-19T15:45:00Z",
		},
	}
}

func defaultFilterGroups() map[string][]models.FilterOption {
	return map[string][]models.FilterOption{
		"emailCategories": {
			{ID: "1", Label: "All Emails", IsSelected: true, Count: 21, Value: "all"},
			{ID: "2", Label: "Unsorted", IsSelected: false, Count: 21, Value: "unsorted"},
			{ID: "3", Label: "High Priority", IsSelected: false, Count: 5, Value: "high", Color: "red"},
			{ID: "4", Label: "With Attachments", IsSelected: false, Count: 12, Value: "attachments"},
		},
		"timeRanges": {
			{ID: "1", Label: "Past Year", IsSelected: true, Value: models.TimeRangePastYear},
			{ID: "2", Label: "Past Month", IsSelected: false, Value: models.TimeRangePastMonth},
			{ID: "3", Label: "Past Week", IsSelected: false, Value: models.TimeRangePastWeek},
			{ID: "4", Label: "Today", IsSelected: false, Value: models.TimeRangeToday},
		},
		"emailStatus": {
			{ID: "1", Label: "All", IsSelected: true, Value: "all"},
			{ID: "2", Label: "Unread", IsSelected: false, Value: "unread"},
			{ID: "3", Label: "Read", IsSelected: false, Value: "read"},
			{ID: "4", Label: "Starred", IsSelected: false, Value: "starred"},
		},
	}
}

func defaultNotifications() []models.Notification {
	return []models.Notification{
		{
			ID:        "1",
			Type:      "info",
			Title:     "New Email Received",
			Message:   "You have received a new encrypted email from bryan@scalablelegal.com",
			IsRead:    false,
			Priority:  models.PriorityMedium,
			Category:  "Email",
			CreatedAt: time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Type:      "warning",
			Title:     "Document Review Required",
			Message:   "Property inspection report requires your review before proceeding",
			IsRead:    false,
			Priority:  models.PriorityHigh,
			Category:  "Document",
			CreatedAt: time.Date(2024, 1, 20, 9, 15, 0, 0, time.UTC),
		},
	}
}
