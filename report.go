package annualreport

import "github.com/tsawler/annualreport/model"

// Bainum Project report content.
const (
	ReportTitle    = "Bainum Project Annual Report"
	ReportFileName = "Bainum_Project_Annual_Report.docx"

	// ReportFontSize is the size, in points, of every body run.
	ReportFontSize = 11.0

	SectionHowBuilt   = "How It Was Built"
	SectionWhatItDoes = "What It Does"
	SectionFuture     = "Future Development"
)

const (
	reportIntro = "The Bainum Project Dashboard is a comprehensive web-based platform designed to support early childhood development assessment and tracking. The system enables teachers, administrators, and parents to collaboratively monitor children's language development through automated analysis of audio recordings. "

	reportHowBuilt = "The dashboard was developed using a modern full-stack architecture. The frontend is built with React and Vite, utilizing Tailwind CSS and DaisyUI for a responsive, accessible user interface. The backend is powered by Node.js and Express, with MongoDB serving as the database for storing child records, assessments, and user data. The system integrates with RevAI's Automatic Speech Recognition (ASR) API to transcribe audio recordings of children's speech. The application implements role-based access control with three distinct user types: administrators who manage the system, teachers who upload recordings and track student progress, and parents who can view their child's developmental data. Security features include JWT authentication, password hashing with bcrypt, and secure invitation-based registration for parents and teachers. "

	reportWhatItDoes = "The dashboard provides a comprehensive suite of tools for tracking and analyzing children's language development. When teachers upload audio recordings, the system automatically transcribes the speech using RevAI and analyzes the transcripts for educational keywords across four key domains: Science Talk (scientific vocabulary and concepts), Social Talk (communication and interaction), Literature Talk (storytelling and narrative skills), and Language Development (overall language growth). "

	reportPlatform = "The platform visualizes this data through interactive dashboards featuring monthly dot matrix displays showing keyword frequency over time, as well as speedometer gauges that provide at-a-glance metrics for each developmental category. Teachers can review transcripts before accepting assessments, add observational notes, and track progress across multiple recordings. Parents receive secure, invitation-based access to view their child's developmental data, fostering transparency and engagement. Administrators can manage teacher and child profiles, view all transcripts, and access comprehensive analytics across the entire program. "

	reportFuturePlans = "Moving forward, we plan to enhance the dashboard with advanced AI-powered analysis capabilities. The current keyword-based approach will be augmented with semantic analysis using large language models to provide deeper insights into children's language development, including identification of developmental milestones, vocabulary complexity assessment, and personalized recommendations for teachers and parents. "

	reportFutureFeatures = "Additional planned features include longitudinal trend analysis with predictive modeling, enhanced data visualization with comparative analytics across children and classrooms, automated report generation for stakeholders, and mobile application support for easier recording uploads in classroom settings. We also aim to integrate with existing educational assessment frameworks and expand the keyword taxonomy based on research findings and user feedback. "
)

// BuildBainumReport returns a Builder holding the Bainum Project annual
// report: a centered title, a spacer, an introduction and three sections.
func BuildBainumReport() *Builder {
	b := New()

	b.AddTitle(ReportTitle)
	b.AddSpacer()
	b.AddParagraph(reportIntro, ReportFontSize)

	b.AddHeading(SectionHowBuilt, 1)
	b.AddParagraph(reportHowBuilt, ReportFontSize)

	b.AddHeading(SectionWhatItDoes, 1)
	b.AddParagraph(reportWhatItDoes, ReportFontSize)
	b.AddParagraph(reportPlatform, ReportFontSize)

	b.AddHeading(SectionFuture, 1)
	b.AddParagraph(reportFuturePlans, ReportFontSize)
	b.AddParagraph(reportFutureFeatures, ReportFontSize)

	return b
}

// BainumReport returns the Bainum Project annual report document.
func BainumReport() *model.Document {
	return BuildBainumReport().Document()
}
