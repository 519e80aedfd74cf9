package view

// DocStatus is the verification state of one credentialing document in the demo.
type DocStatus string

const (
	DocVerified DocStatus = "verified"
	DocNeeded   DocStatus = "needed"
)

// Doc is one row of the demo document checklist.
type Doc struct {
	Label  string
	Status DocStatus
}

// DemoProvider is the scripted provider shown in the interactive demo.
type DemoProvider struct {
	Name      string
	Status    string
	Progress  int
	Done      int
	Active    int
	Todo      int
	Docs      []Doc
	ActiveDoc string
}

// Feature is a titled paragraph used by the timeline and advantage sections.
type Feature struct {
	Title string
	Body  string
}

// Testimonial is a quote from a practice interview.
type Testimonial struct {
	Quote  string
	Author string
}

// Landing is everything the landing page renders.
type Landing struct {
	Title        string
	Description  string
	Steps        []Feature
	Provider     DemoProvider
	AISteps      []string
	StepDelayMS  int
	Advantages   []Feature
	Testimonials []Testimonial
	ThankYou     string
	Year         int
}

// AIStatusSteps are the labels the demo upload zone cycles through.
var AIStatusSteps = []string{
	"AI Analyzing Document...",
	"Cross-Referencing Sources...",
	"Populating Provider Profile...",
	"Success!",
}

// DefaultLanding returns the production copy of the landing page.
func DefaultLanding(year int) Landing {
	return Landing{
		Title:       "Cloux - Automate Credentialing. Accelerate Revenue.",
		Description: "AI-powered platform that automates credentialing workflows for small healthcare practices, starting with dental, to get providers billing faster and reduce administrative burden.",
		Steps: []Feature{
			{"Reduce Administrative Work", "Our AI ingestion system securely processes provider documents via drag-and-drop. Providers can also use the Provider Self-Service Compliance Portal to upload their documents and manage their compliance status."},
			{"Ensure Accuracy", "Automated verification cross-checks key fields against primary sources like state license boards, NPI registries, and CAQH, and flags ambiguities for review."},
			{"Accelerate Revenue", "Intelligent automation uses verified data to auto-populate payer application packets, reducing turnaround time from months to as little as a week in pilot settings."},
			{"Stay Compliant", "Continuous monitoring tracks expiration dates and compliance events, automatically triggering follow-ups and providing one-click, audit-ready reports."},
		},
		Provider: DemoProvider{
			Name:     "Dr. Jane Smith",
			Status:   "Next: Upload 1 remaining document",
			Progress: 86,
			Done:     6,
			Todo:     1,
			Docs: []Doc{
				{"State Dental License", DocVerified},
				{"DEA Certificate", DocVerified},
				{"Malpractice Insurance", DocVerified},
				{"Curriculum Vitae", DocVerified},
				{"Board Certification", DocNeeded},
				{"NPI Confirmation Letter", DocVerified},
				{"W-9 Form", DocVerified},
			},
			ActiveDoc: "Board Certification",
		},
		AISteps:     AIStatusSteps,
		StepDelayMS: 1200,
		Advantages: []Feature{
			{"Specialized Automation Modules", "We use a set of specialized automation modules, each designed for a specific task, from document ingestion and data extraction to cross-verification and payer form population."},
			{"Built From the Ground Up", "Our entire system was designed around automation. This deep integration allows for a seamless, efficient workflow that is difficult for legacy systems to replicate."},
			{"Data Integrity at the Core", "Verification is built into every step, so credentialing data stays accurate and compliant throughout the process."},
		},
		Testimonials: []Testimonial{
			{"We use a spreadsheet and it's a mess. Knowing where every provider stands on one simple dashboard would be a game-changer.", "Michael T., Clinic Owner"},
			{"This process is a constant headache. A tool that automates follow-ups would save me at least 10 hours a month.", "Brenda E., Office Manager"},
			{"Getting a new dentist approved by payers is the single biggest bottleneck to our revenue. This can't come soon enough.", "Sarah P., Practice Administrator"},
		},
		ThankYou: "Thank you! We've received your request and will be in touch shortly to schedule your demo.",
		Year:     year,
	}
}
