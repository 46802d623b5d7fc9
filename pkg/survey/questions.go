// Package survey holds the static questionnaires used by the recommendation
// and suggestion flows. Both sets are fixed per process; they are not derived
// per-session.
package survey

// Question is one questionnaire item: stable identifier plus prompt text.
type Question struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

// RecommenderQuestions returns the fixed survey shown after a job search. The
// ids are the answer keys the scorer understands.
func RecommenderQuestions() []Question {
	return []Question{
		{Id: "q_skill_python", Text: "Rate your experience level with Python (1=None, 3=Familiar, 5=Expert):"},
		{Id: "q_skill_frontend", Text: "How comfortable are you with modern frontend frameworks like React/Vue? (1=Not at all, 3=Somewhat, 5=Very)"},
		{Id: "q_skill_cloud", Text: "Do you have hands-on experience with cloud platforms like AWS, Azure, or GCP? (Yes/No/Learning)"},
		{Id: "q_interest_data", Text: "How interested are you in working with data analysis or machine learning? (1=Low, 3=Medium, 5=High)"},
		{Id: "q_preference_role", Text: "Do you prefer Backend, Frontend, Full Stack, DevOps/Cloud, Data Science, or non-technical roles (e.g., Marketing, Research)?"},
		{Id: "q_preference_work_mode", Text: "What is your preferred work mode? (Remote/Hybrid/Office)"},
		{Id: "q_preference_company_type", Text: "Do you prefer working in Startups, Mid-sized companies, or Large enterprises?"},
	}
}

// CareerQuestions returns the stepwise career-suggestion interview.
func CareerQuestions() []Question {
	return []Question{
		{Id: "q1", Text: "What subjects or activities did you enjoy most in school/university, and why?"},
		{Id: "q2", Text: "What are 2-3 of your strongest skills (e.g., communication, problem-solving, specific software, technical skills)?"},
		{Id: "q3", Text: "Describe your ideal work environment (e.g., collaborative team, independent work, fast-paced, structured, creative)."},
		{Id: "q4", Text: "What kind of problems or challenges do you find motivating or enjoyable to tackle?"},
		{Id: "q5", Text: "What are your salary expectations or financial goals for your career (optional)?"},
		{Id: "q6", Text: "Are there any industries or types of companies you are particularly interested in or want to avoid?"},
		{Id: "q7", Text: "What is your current level of education (e.g., 12th, UG, PG, Diploma, PhD)?"},
		{Id: "q8", Text: "Have you done any internships or projects? If yes, briefly describe them."},
		{Id: "q9", Text: "Do you have any certifications or courses completed (e.g., AWS, Python, Marketing, etc.)?"},
		{Id: "q10", Text: "Would you prefer a technical, managerial, creative, research-oriented, or people-facing role?"},
		{Id: "q11", Text: "Are you open to relocation or do you prefer working in a specific city or region?"},
	}
}
