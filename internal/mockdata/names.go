package mockdata

// Name pools the generator draws from. Mentor and mentee pools feed partner
// assignment; userNames feeds the generated users themselves.
var (
	mentorNames = []string{
		"Dr. Smith", "Dr. Johnson", "Dr. Williams", "Dr. Brown", "Dr. Jones",
		"Dr. Garcia", "Dr. Miller", "Dr. Davis", "Dr. Rodriguez", "Dr. Martinez",
	}

	menteeNames = []string{
		"Alice Chen", "Bob Lee", "Carol Wang", "David Zhang", "Emma Liu",
		"Frank Wu", "Grace Kim", "Henry Park", "Iris Tang", "Jack Yang",
		"Kate Lin", "Leo Huang", "Maya Chen", "Noah Wei",
	}

	userNames = []string{
		"Alex Smith", "Brian Johnson", "Catherine Lee", "Daniel Wong",
		"Emily Chen", "Frank Liu", "Grace Kim", "Henry Zhang",
	}
)
