package database

type seedRole struct {
	Title         string
	Description   string
	Specification string
}

type seedDepartment struct {
	Name       string
	Roles      []seedRole
	Applicants int
	Interviews int
	Offers     int
	Hires      int
}

// defaultDepartments is the starting role catalog and recruitment funnel.
var defaultDepartments = []seedDepartment{
	{
		Name:       "Engineering",
		Applicants: 250,
		Interviews: 150,
		Offers:     140,
		Hires:      100,
		Roles: []seedRole{
			{
				Title:         "Software Engineer",
				Description:   "Develop, test, and maintain software applications using Python, JavaScript, and other relevant technologies. Collaborate with cross-functional teams to define, design, and ship new features.",
				Specification: "Bachelor's degree in Computer Science or a related field. 3+ years of experience in software development. Strong proficiency in Python, JavaScript, and database management.",
			},
			{
				Title:         "Senior Developer",
				Description:   "Lead the design and implementation of complex software solutions. Mentor junior developers, conduct code reviews, and ensure high-quality code standards are met. Drive technical innovation and architectural decisions.",
				Specification: "Master's degree in a technical field preferred. 7+ years of hands-on experience in full-stack development. Proven leadership skills and a track record of successful project delivery.",
			},
			{
				Title:         "QA Analyst",
				Description:   "Design and execute test plans to ensure the quality of software products. Identify, document, and track bugs. Work with development teams to resolve issues and improve product quality.",
				Specification: "Bachelor's degree in a technical field or equivalent experience. 2+ years of experience in software quality assurance. Familiarity with automated testing tools and a strong attention to detail.",
			},
			{
				Title:         "Data Scientist",
				Description:   "Develop and implement statistical models, machine learning algorithms, and data analysis pipelines to uncover actionable insights. Communicate findings to stakeholders and support data-driven decision-making.",
				Specification: "Master's or PhD in a quantitative field (e.g., Data Science, Statistics, Computer Science). Expertise in Python/R and libraries like scikit-learn, TensorFlow. Experience with data visualization tools like Tableau or Power BI.",
			},
		},
	},
	{
		Name:       "Marketing",
		Applicants: 400,
		Interviews: 300,
		Offers:     250,
		Hires:      210,
		Roles: []seedRole{
			{
				Title:         "Marketing Specialist",
				Description:   "Execute marketing campaigns across various channels, manage social media presence, and analyze campaign performance metrics to optimize ROI. Assist in content creation and market research.",
				Specification: "Bachelor's degree in Marketing, Communications, or a related field. 2+ years of experience in digital marketing. Proficiency with digital marketing platforms (e.g., Google Ads, Meta Ads) and analytics tools.",
			},
			{
				Title:         "Digital Marketing Manager",
				Description:   "Develop and oversee the company's digital marketing strategy. Manage a team of marketing specialists, analyze market trends, and implement data-driven campaigns to achieve business goals.",
				Specification: "Bachelor's degree in Marketing. 5+ years of experience in digital marketing, with 2+ years in a leadership role. Strong project management and analytical skills.",
			},
			{
				Title:         "Content Creator",
				Description:   "Produce engaging and informative content for blogs, social media, and websites. Research industry-related topics and create content that drives audience engagement and brand growth.",
				Specification: "Bachelor's degree in English, Journalism, or a related field. Proven experience as a content creator with a strong portfolio. Excellent writing, editing, and communication skills.",
			},
			{
				Title:         "SEO Analyst",
				Description:   "Optimize website content and structure for search engines to improve organic rankings and traffic. Conduct keyword research, technical audits, and competitor analysis.",
				Specification: "2+ years of experience in SEO. Proficiency with SEO tools like SEMrush, Ahrefs, and Google Analytics. Strong analytical and problem-solving skills.",
			},
		},
	},
	{
		Name:       "Finance",
		Applicants: 300,
		Interviews: 210,
		Offers:     180,
		Hires:      150,
		Roles: []seedRole{
			{
				Title:         "Financial Analyst",
				Description:   "Analyze financial data, prepare reports, and forecast business performance. Support budgeting, financial modeling, and investment analysis to guide strategic decisions.",
				Specification: "Bachelor's degree in Finance, Accounting, or Economics. 3+ years of experience in financial analysis. Strong knowledge of financial software and advanced Excel skills.",
			},
			{
				Title:         "Accountant",
				Description:   "Manage all financial transactions, including ledger entries, bank reconciliations, and payroll. Prepare financial statements and ensure compliance with accounting standards.",
				Specification: "Bachelor's degree in Accounting. Certified Public Accountant (CPA) license is a plus. 2+ years of experience in a similar role. Proficiency with accounting software like QuickBooks.",
			},
			{
				Title:         "Finance Manager",
				Description:   "Oversee the finance department, manage financial reporting, and develop strategies to improve financial health. Lead budgeting and forecasting processes.",
				Specification: "Master's degree in Finance or MBA. 7+ years of experience in finance, with 3+ years in a management position. Strong leadership and strategic planning skills.",
			},
			{
				Title:         "Auditor",
				Description:   "Examine financial records and statements to ensure accuracy and compliance with laws and regulations. Identify financial risks and make recommendations for improvement.",
				Specification: "Bachelor's degree in Accounting or Finance. Certified Internal Auditor (CIA) or Certified Public Accountant (CPA) license required. 3+ years of experience in auditing.",
			},
		},
	},
	{
		Name:       "HR",
		Applicants: 350,
		Interviews: 230,
		Offers:     220,
		Hires:      190,
		Roles: []seedRole{
			{
				Title:         "HR Manager",
				Description:   "Lead the HR department, develop and implement HR policies, and manage employee relations. Oversee recruitment, training, and performance management processes.",
				Specification: "Bachelor's degree in Human Resources or Business Administration. 5+ years of experience in HR, with 2+ years in a management role. Strong knowledge of labor laws and regulations.",
			},
			{
				Title:         "HR Analyst",
				Description:   "Analyze HR data, create reports, and support the HR team with strategic initiatives related to compensation, benefits, and employee engagement.",
				Specification: "Bachelor's degree in Human Resources or Business, with a strong background in data analysis and Excel. Experience with HRIS systems is a plus.",
			},
			{
				Title:         "Recruitment Specialist",
				Description:   "Manage the end-to-end recruitment process, from sourcing to onboarding. Build and maintain talent pipelines, conduct interviews, and ensure a positive candidate experience.",
				Specification: "Bachelor's degree in HR, Business, or a related field. 3+ years of experience in recruitment, with strong communication and negotiation skills.",
			},
			{
				Title:         "Benefits Coordinator",
				Description:   "Administer employee benefits programs, including health insurance, retirement plans, and leave policies. Communicate benefits information to employees and resolve related inquiries.",
				Specification: "Associate's or Bachelor's degree in HR. 1+ years of experience in benefits administration. Strong organizational skills and attention to detail.",
			},
		},
	},
	{
		Name:       "Operations",
		Applicants: 200,
		Interviews: 110,
		Offers:     100,
		Hires:      80,
		Roles: []seedRole{
			{
				Title:         "Operations Manager",
				Description:   "Oversee daily business operations, implement efficient processes, and manage a team of operations staff. Ensure the company's operational activities are optimized for productivity.",
				Specification: "Bachelor's degree in Business or Operations Management. 5+ years of experience in an operations role, with a proven track record of process improvement.",
			},
			{
				Title:         "Supply Chain Analyst",
				Description:   "Analyze supply chain data to identify areas for improvement and cost reduction. Monitor inventory levels, track shipments, and forecast demand to optimize supply chain efficiency.",
				Specification: "Bachelor's degree in Supply Chain Management, Logistics, or a related field. 2+ years of experience in supply chain analysis. Proficiency with supply chain management software.",
			},
			{
				Title:         "Project Manager",
				Description:   "Lead projects from conception to completion, defining project scope, setting deadlines, and managing resources. Ensure projects are delivered on time and within budget.",
				Specification: "Bachelor's degree in Business or a related field. Project Management Professional (PMP) certification is a plus. 3+ years of experience in project management.",
			},
		},
	},
	{
		Name:       "Sales",
		Applicants: 450,
		Interviews: 360,
		Offers:     320,
		Hires:      280,
		Roles: []seedRole{
			{
				Title:         "Sales Manager",
				Description:   "Lead and motivate the sales team to achieve targets. Develop sales strategies, analyze market trends, and build strong client relationships to drive revenue growth.",
				Specification: "Bachelor's degree in Business or a related field. 5+ years of experience in sales, with a proven track record of meeting or exceeding targets. Strong leadership and communication skills.",
			},
			{
				Title:         "Account Executive",
				Description:   "Manage a portfolio of client accounts, build strong relationships, and identify new business opportunities. Present products and services to clients and negotiate contracts.",
				Specification: "Bachelor's degree in Business or Sales. 2+ years of experience as an Account Executive. Excellent interpersonal and presentation skills.",
			},
			{
				Title:         "Business Development Representative",
				Description:   "Identify and qualify new business leads through research and outreach. Schedule meetings and demonstrations for the sales team and assist in building the sales pipeline.",
				Specification: "Bachelor's degree in a related field. 1+ years of experience in a sales or business development role. Strong prospecting and communication skills.",
			},
		},
	},
}
