package main

import "github.com/xavierca1/ligue-outreach/internal/entity"

// Used when --lead or --product is omitted.

func sampleLead() entity.LeadProfile {
	return entity.LeadProfile{
		Name:        "Sarah Chen",
		Company:     "CloudScale Analytics",
		JobTitle:    "VP Engineering",
		Industry:    "Technology",
		CompanySize: 250,
		Email:       "sarah.chen@cloudscale.example",
	}
}

func sampleProduct() entity.ProductInfo {
	return entity.ProductInfo{
		Name:        "DevOps Acceleration Platform",
		Description: "AI-powered DevOps platform that automates CI/CD pipelines, monitors deployments, and optimizes infrastructure costs",
		Benefits: []string{
			"Reduce deployment time by 60%",
			"Cut infrastructure costs by 30%",
			"Improve code quality with automated testing",
			"Scale engineering teams efficiently",
			"24/7 intelligent monitoring and alerting",
		},
		TargetOutcome: "Accelerate development velocity while maintaining reliability and reducing operational overhead",
		PricingModel:  "SaaS subscription starting at $500/month",
		UseCases: []string{
			"Automated CI/CD pipeline setup",
			"Infrastructure cost optimization",
			"Development team productivity improvement",
			"Enterprise-grade monitoring and observability",
		},
		Differentiators: []string{
			"AI-powered optimization recommendations",
			"Seamless integration with existing tools",
			"Enterprise-grade security and compliance",
			"24/7 expert support and onboarding",
		},
	}
}
