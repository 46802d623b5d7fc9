package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Static job data. A stand-in for a live job-board integration; filtering stays
// deliberately simple.
var staticJobs = []JobPosting{
	{
		Id: "j1", Title: "Python Backend Developer", Company: "Fintech Innovations Pvt. Ltd.", Location: "Pune",
		Description: "Develop and maintain scalable backend services using Python, Django, and REST APIs for our financial platform. Requires database knowledge (PostgreSQL).",
		Skills:      "Python, Django, REST, SQL, PostgreSQL, Git",
		Tags:        []string{"Fintech", "Backend", "Experienced"},
	},
	{
		Id: "j2", Title: "React Frontend Developer", Company: "MediaStream Co.", Location: "Mumbai (Hybrid)",
		Description: "Build modern, responsive user interfaces for our streaming service using React, Redux, and TypeScript. Collaborate with UI/UX designers.",
		Skills:      "React, Redux, JavaScript, TypeScript, HTML5, CSS3, Git",
		Tags:        []string{"Frontend", "Media", "UI", "Hybrid"},
	},
	{
		Id: "j3", Title: "Data Scientist - ML", Company: "HealthAnalytics AI", Location: "Bangalore",
		Description: "Apply statistical analysis and machine learning techniques (NLP focus) to healthcare data. Build and deploy models using Python and relevant libraries.",
		Skills:      "Python, Pandas, Scikit-learn, TensorFlow/PyTorch, SQL, NLP, ML",
		Tags:        []string{"Data Science", "ML", "AI", "Healthcare", "Python"},
	},
	{
		Id: "j4", Title: "Cloud Infrastructure Engineer (AWS)", Company: "Retail Cloud Solutions", Location: "Pune (Remote)",
		Description: "Design, implement, and manage secure, scalable AWS cloud infrastructure using Terraform and CI/CD pipelines. Monitor performance and costs.",
		Skills:      "AWS, Terraform, Docker, Kubernetes, CI/CD, Jenkins, Linux, Python (scripting)",
		Tags:        []string{"Cloud", "AWS", "DevOps", "Remote", "Infrastructure"},
	},
	{
		Id: "j5", Title: "Software Engineer (Java)", Company: "Enterprise Software Hub", Location: "Hyderabad",
		Description: "Join a team building large-scale enterprise applications using Java, Spring Boot, and microservices architecture.",
		Skills:      "Java, Spring Boot, Microservices, SQL, Maven/Gradle, OOP",
		Tags:        []string{"Backend", "Java", "Enterprise", "Experienced"},
	},
	{
		Id: "j6", Title: "Digital Marketing Specialist", Company: "Ecom World", Location: "Mumbai",
		Description: "Manage SEO, SEM, and social media marketing campaigns to drive traffic and conversions for our e-commerce platform.",
		Skills:      "SEO, SEM, Google Analytics, Google Ads, Social Media Marketing, Content Marketing",
		Tags:        []string{"Marketing", "E-commerce", "Digital"},
	},
	{
		Id: "j7", Title: "AI Ethics Researcher", Company: "Responsible Tech Institute", Location: "Bangalore (Hybrid)",
		Description: "Conduct research on the ethical implications of AI deployment. Develop frameworks and guidelines for responsible AI.",
		Skills:      "AI Ethics, Research, Policy Analysis, Communication",
		Tags:        []string{"AI", "Ethics", "Research", "Policy", "Hybrid"},
	},
	{
		Id: "j8", Title: "Junior Full Stack Developer", Company: "Startup Launchpad", Location: "Pune",
		Description: "Entry-level role involving both frontend (React/Vue) and backend (Node.js/Python) development for various web projects. Great learning opportunity.",
		Skills:      "JavaScript, React/Vue, Node.js/Python, HTML, CSS, Git, Eagerness to learn",
		Tags:        []string{"Full Stack", "Junior", "Web Development", "Startup"},
	},
}

// StaticCatalog serves the static dataset with per-query result caching.
type StaticCatalog struct {
	cache *cache.Cache
}

var _ Catalog = &StaticCatalog{}

func NewStaticCatalog() *StaticCatalog {
	// Queries over a static dataset are cheap, but the cache keeps the shape
	// identical to a live provider where repeated searches would be costly.
	c := cache.New(10*time.Minute, 10*time.Minute)
	return &StaticCatalog{cache: c}
}

func (s *StaticCatalog) Search(ctx context.Context, keywords, location string) ([]JobPosting, error) {
	cacheKey := fmt.Sprintf("search:%s:%s", strings.ToLower(keywords), strings.ToLower(location))
	if x, found := s.cache.Get(cacheKey); found {
		return cloneAll(x.([]JobPosting)), nil
	}

	matched := filterJobs(keywords)

	results := make([]JobPosting, 0, len(matched))
	for _, job := range matched {
		job = job.Clone()
		job.SourceURL = fmt.Sprintf("https://static-job-portal.dev/job/%s", job.Id)
		results = append(results, job)
	}

	s.cache.Set(cacheKey, results, cache.DefaultExpiration)
	return cloneAll(results), nil
}

// filterJobs keeps postings where any search term appears in the title,
// description, skill list, or tags. Empty keywords return the whole dataset.
func filterJobs(keywords string) []JobPosting {
	terms := strings.Fields(strings.ToLower(keywords))
	if len(terms) == 0 {
		return staticJobs
	}

	var matched []JobPosting
	for _, job := range staticJobs {
		title := strings.ToLower(job.Title)
		description := strings.ToLower(job.Description)
		skills := strings.ToLower(job.Skills)

		hit := false
		for _, term := range terms {
			if strings.Contains(title, term) || strings.Contains(description, term) || strings.Contains(skills, term) {
				hit = true
				break
			}
			for _, tag := range job.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if hit {
			matched = append(matched, job)
		}
	}
	return matched
}

func cloneAll(jobs []JobPosting) []JobPosting {
	out := make([]JobPosting, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Clone())
	}
	return out
}
