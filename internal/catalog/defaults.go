package catalog

import "github.com/ShayCichocki/devcrew/pkg/models"

// defaultAgents returns the built-in development team registry.
func defaultAgents() map[string]models.AgentCapability {
	return map[string]models.AgentCapability{
		"product-manager": {
			Name: "product-manager",
			Role: "Product Strategy & Requirements",
			Expertise: []string{
				"market research", "user story creation", "feature prioritization",
				"stakeholder management", "acceptance criteria", "roadmap planning",
				"competitive analysis", "user persona development",
			},
			HandoffTargets: []string{"architect", "designer", "qa"},
			Constraints: []string{
				"no technical implementation decisions",
				"no UI/UX specific designs",
				"no infrastructure choices",
			},
			Tools:        []string{"user research templates", "priority matrices", "story mapping"},
			BaseDuration: 30,
			OutputFormat: `📋 PRODUCT ANALYSIS
Business Value: [Revenue/user impact assessment]
Market Context: [Competitive landscape, user needs]
User Stories: [As a... I want... So that...]
Acceptance Criteria: [Specific, testable requirements]
Success Metrics: [KPIs to measure success]
Priority: [High/Medium/Low with business justification]
Dependencies: [What needs to exist first]
Next Action: [Specific handoff with context]
`,
		},
		"architect": {
			Name: "architect",
			Role: "System Design & Technical Strategy",
			Expertise: []string{
				"system architecture", "scalability design", "performance optimization",
				"security architecture", "technology evaluation", "API design",
				"database architecture", "microservices", "integration patterns",
			},
			HandoffTargets: []string{"backend-dev", "frontend-dev", "devops", "security"},
			Constraints: []string{
				"no UI/UX design decisions",
				"no business priority decisions",
				"no specific implementation code",
			},
			Tools:        []string{"architecture diagrams", "tech stack evaluation", "performance modeling"},
			BaseDuration: 45,
			OutputFormat: `🏗️ ARCHITECTURE DESIGN
System Overview: [High-level architecture diagram description]
Technology Stack: [Languages, frameworks, databases with rationale]
Scalability Strategy: [How system handles growth]
Security Architecture: [Authentication, authorization, data protection]
API Design: [REST/GraphQL structure and standards]
Data Architecture: [Database design, data flow, caching strategy]
Integration Points: [External services, third-party APIs]
Performance Considerations: [Bottlenecks, optimization strategies]
Next Action: [Specific handoff with technical context]
`,
		},
		"frontend-dev": {
			Name: "frontend-dev",
			Role: "User Interface & Client-Side Development",
			Expertise: []string{
				"React/Vue/Angular", "responsive design", "CSS/Sass/Tailwind",
				"JavaScript/TypeScript", "state management", "accessibility",
				"performance optimization", "browser compatibility", "PWA development",
			},
			HandoffTargets: []string{"backend-dev", "designer", "qa"},
			Constraints: []string{
				"no backend/server logic",
				"no infrastructure decisions",
				"no business requirements definition",
			},
			Tools:        []string{"component libraries", "bundlers", "testing frameworks"},
			BaseDuration: 60,
			OutputFormat: `🎨 FRONTEND IMPLEMENTATION
Component Architecture: [React/Vue component structure]
State Management: [Redux/Vuex/Context API strategy]
Styling Strategy: [CSS modules, Tailwind, styled-components approach]
Responsive Design: [Mobile-first, breakpoint strategy]
Accessibility: [WCAG compliance, screen reader support]
Performance: [Bundle optimization, lazy loading, caching]
Testing Approach: [Unit tests, integration tests, E2E tests]
Browser Support: [Compatibility requirements and polyfills]
Next Action: [API requirements, design clarifications needed]
`,
		},
		"backend-dev": {
			Name: "backend-dev",
			Role: "Server-Side Logic & API Development",
			Expertise: []string{
				"Node.js/Python/Java", "API development", "database design",
				"authentication/authorization", "business logic", "data validation",
				"caching strategies", "background jobs", "third-party integrations",
			},
			HandoffTargets: []string{"frontend-dev", "devops", "qa", "architect"},
			Constraints: []string{
				"no UI/frontend decisions",
				"no product strategy decisions",
				"no infrastructure provisioning",
			},
			Tools:        []string{"API frameworks", "database ORMs", "testing suites"},
			BaseDuration: 60,
			OutputFormat: `⚡ BACKEND IMPLEMENTATION
API Endpoints: [REST/GraphQL endpoint specifications]
Database Schema: [Tables, relationships, indexes, constraints]
Authentication: [JWT, OAuth, session management strategy]
Business Logic: [Core algorithms, validation rules, workflows]
Data Validation: [Input sanitization, schema validation]
Error Handling: [Exception handling, logging, monitoring]
Performance: [Query optimization, caching, rate limiting]
Security: [Input validation, SQL injection prevention, data encryption]
Next Action: [Frontend API contracts, deployment requirements]
`,
		},
		"qa": {
			Name: "qa",
			Role: "Quality Assurance & Testing Strategy",
			Expertise: []string{
				"test planning", "automated testing", "manual testing",
				"performance testing", "security testing", "usability testing",
				"regression testing", "test case design", "bug tracking",
			},
			HandoffTargets: []string{"frontend-dev", "backend-dev", "devops"},
			Constraints: []string{
				"no feature implementation",
				"no architecture decisions",
				"no business priority setting",
			},
			Tools:        []string{"testing frameworks", "automation tools", "performance testing"},
			BaseDuration: 40,
			OutputFormat: `🧪 TESTING STRATEGY
Test Plan: [Comprehensive testing approach]
Test Cases: [Detailed scenarios with expected outcomes]
Automation Strategy: [Unit, integration, E2E test automation]
Performance Tests: [Load testing, stress testing, benchmarks]
Security Tests: [Vulnerability scanning, penetration testing]
Usability Tests: [User experience validation]
Regression Tests: [Change impact validation]
Bug Tracking: [Issue identification and reporting process]
Next Action: [Implementation feedback, deployment validation]
`,
		},
		"devops": {
			Name: "devops",
			Role: "Infrastructure & Deployment Operations",
			Expertise: []string{
				"containerization", "CI/CD pipelines", "cloud infrastructure",
				"monitoring & alerting", "backup & disaster recovery",
				"security operations", "performance monitoring", "log management",
			},
			HandoffTargets: []string{"backend-dev", "qa", "security"},
			Constraints: []string{
				"no application business logic",
				"no feature prioritization",
				"no UI/UX decisions",
			},
			Tools:        []string{"Docker", "Kubernetes", "CI/CD tools", "monitoring systems"},
			BaseDuration: 35,
			OutputFormat: `🚀 INFRASTRUCTURE & DEPLOYMENT
Containerization: [Docker strategy, image optimization]
CI/CD Pipeline: [Build, test, deploy automation]
Infrastructure: [Cloud provider, resource allocation]
Monitoring: [Application monitoring, alerting, logging]
Security: [Infrastructure security, secrets management]
Backup Strategy: [Data backup, disaster recovery plan]
Scaling: [Auto-scaling, load balancing strategy]
Cost Optimization: [Resource efficiency, cost monitoring]
Next Action: [Application deployment requirements, security validation]
`,
		},
		"security": {
			Name: "security",
			Role: "Security Architecture & Compliance",
			Expertise: []string{
				"threat modeling", "security auditing", "compliance (GDPR, HIPAA)",
				"penetration testing", "vulnerability assessment", "secure coding",
				"identity management", "data protection", "incident response",
			},
			HandoffTargets: []string{"backend-dev", "devops", "architect"},
			Constraints: []string{
				"no business feature decisions",
				"no UI/UX implementations",
				"no infrastructure provisioning",
			},
			Tools:        []string{"security scanners", "audit tools", "compliance frameworks"},
			BaseDuration: 50,
			OutputFormat: `🔒 SECURITY ANALYSIS
Threat Model: [Security risks and attack vectors]
Vulnerabilities: [Identified security weaknesses]
Compliance: [GDPR, HIPAA, SOC2 requirements]
Security Controls: [Authentication, authorization, encryption]
Data Protection: [PII handling, data classification, retention]
Incident Response: [Security breach response plan]
Audit Trail: [Logging, monitoring, forensic capabilities]
Recommendations: [Security improvements and best practices]
Next Action: [Implementation requirements, ongoing monitoring]
`,
		},
	}
}

// defaultTemplates returns the built-in workflow templates.
func defaultTemplates() map[string]Template {
	return map[string]Template{
		"new-feature": {
			Description: "Complete feature development from requirements to deployment",
			Sequence: []string{
				"product-manager", "architect", "security",
				"frontend-dev", "backend-dev", "qa", "devops",
			},
			Multiplier: 1.0,
		},
		"mvp-development": {
			Description: "Minimal Viable Product development workflow",
			Sequence: []string{
				"product-manager", "architect", "security",
				"backend-dev", "frontend-dev", "devops", "qa",
			},
			Multiplier: 1.5,
		},
		"bug-fix": {
			Description: "Bug investigation, fixing, and validation workflow",
			Sequence: []string{
				"qa", "backend-dev", "frontend-dev", "security", "qa", "devops",
			},
			Multiplier: 0.7,
		},
		"performance-optimization": {
			Description: "System performance analysis and optimization",
			Sequence: []string{
				"architect", "backend-dev", "frontend-dev", "devops", "qa",
			},
			Multiplier: 1.2,
		},
		"security-audit": {
			Description: "Comprehensive security assessment and remediation",
			Sequence: []string{
				"security", "architect", "backend-dev", "devops", "qa",
			},
			Multiplier: 1.8,
		},
		"refactoring": {
			Description: "Code refactoring with proper testing and validation",
			Sequence: []string{
				"architect", "backend-dev", "frontend-dev", "qa", "devops",
			},
			Multiplier: 1.1,
		},
	}
}
