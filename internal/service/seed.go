package service

import (
	"time"

	"github.com/saintgo7/web-abada-pamout/internal/domain"
	"github.com/saintgo7/web-abada-pamout/internal/store"
)

// Seed fills the store with the demo portfolio: three programs, five
// projects and a ten-person engineering team, all dated relative to
// now. IDs are stable so the records are easy to address from the CLI.
func Seed(st *store.Store, now time.Time) {
	now = now.UTC()
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }
	months := func(n int) time.Time { return now.AddDate(0, n, 0) }
	ptr := func(t time.Time) *time.Time { return &t }

	st.SetPrograms([]domain.Program{
		{
			ID:          "prog-1",
			Name:        "Digital Transformation 2025",
			Description: "Company-wide digital initiative to modernize legacy systems and implement cloud-native solutions",
			Status:      domain.ProgramActive,
			StartDate:   days(-60),
			EndDate:     months(8),
			Budget:      2500000,
			Spent:       850000,
			Progress:    34,
			OwnerID:     "user-1",
			CreatedAt:   days(-60),
			UpdatedAt:   now,
		},
		{
			ID:          "prog-2",
			Name:        "Customer Experience Enhancement",
			Description: "Multi-project initiative to improve customer satisfaction through UX improvements and new service channels",
			Status:      domain.ProgramActive,
			StartDate:   days(-30),
			EndDate:     months(6),
			Budget:      1800000,
			Spent:       420000,
			Progress:    23,
			OwnerID:     "user-2",
			CreatedAt:   days(-30),
			UpdatedAt:   now,
		},
		{
			ID:          "prog-3",
			Name:        "Infrastructure Modernization",
			Description: "Complete overhaul of on-premise infrastructure to cloud-based architecture",
			Status:      domain.ProgramPlanning,
			StartDate:   months(2),
			EndDate:     months(14),
			Budget:      3200000,
			Spent:       0,
			Progress:    0,
			OwnerID:     "user-1",
			CreatedAt:   days(-10),
			UpdatedAt:   now,
		},
	})

	st.SetProjects([]domain.Project{
		{
			ID:          "proj-1",
			ProgramID:   "prog-1",
			Name:        "Cloud Migration Platform",
			Description: "Migrate core applications to AWS cloud infrastructure with auto-scaling capabilities",
			Status:      domain.ProjectInProgress,
			StartDate:   days(-45),
			EndDate:     months(4),
			Budget:      850000,
			Spent:       320000,
			Progress:    38,
			Priority:    domain.PriorityHigh,
			ManagerID:   "res-1",
			CreatedAt:   days(-45),
			UpdatedAt:   now,
		},
		{
			ID:          "proj-2",
			ProgramID:   "prog-1",
			Name:        "API Gateway Implementation",
			Description: "Implement centralized API management with authentication, rate limiting, and analytics",
			Status:      domain.ProjectInProgress,
			StartDate:   days(-30),
			EndDate:     months(3),
			Budget:      420000,
			Spent:       180000,
			Progress:    43,
			Priority:    domain.PriorityHigh,
			ManagerID:   "res-2",
			CreatedAt:   days(-30),
			UpdatedAt:   now,
		},
		{
			ID:          "proj-3",
			ProgramID:   "prog-1",
			Name:        "Data Lake Construction",
			Description: "Build enterprise data lake for analytics and machine learning workloads",
			Status:      domain.ProjectNotStarted,
			StartDate:   days(15),
			EndDate:     months(5),
			Budget:      650000,
			Spent:       0,
			Progress:    0,
			Priority:    domain.PriorityMedium,
			ManagerID:   "res-3",
			CreatedAt:   days(-15),
			UpdatedAt:   now,
		},
		{
			ID:          "proj-4",
			ProgramID:   "prog-2",
			Name:        "Mobile App Redesign",
			Description: "Complete UX/UI overhaul of mobile application with modern design system",
			Status:      domain.ProjectInProgress,
			StartDate:   days(-20),
			EndDate:     months(4),
			Budget:      520000,
			Spent:       150000,
			Progress:    29,
			Priority:    domain.PriorityHigh,
			ManagerID:   "res-4",
			CreatedAt:   days(-20),
			UpdatedAt:   now,
		},
		{
			ID:          "proj-5",
			ProgramID:   "prog-2",
			Name:        "Self-Service Portal",
			Description: "Customer-facing portal for account management and service requests",
			Status:      domain.ProjectNotStarted,
			StartDate:   days(30),
			EndDate:     months(3),
			Budget:      380000,
			Spent:       0,
			Progress:    0,
			Priority:    domain.PriorityMedium,
			ManagerID:   "res-5",
			CreatedAt:   days(-5),
			UpdatedAt:   now,
		},
	})

	st.SetTasks([]domain.Task{
		{
			ID:          "task-1",
			ProjectID:   "proj-1",
			Name:        "Infrastructure Assessment",
			Description: "Assess current infrastructure and create migration roadmap",
			Status:      domain.TaskCompleted,
			StartDate:   days(-45),
			EndDate:     days(-30),
			Progress:    100,
			Priority:    domain.PriorityHigh,
			AssigneeID:  "res-1",
			CreatedAt:   days(-45),
			UpdatedAt:   days(-30),
		},
		{
			ID:          "task-2",
			ProjectID:   "proj-1",
			Name:        "AWS Account Setup",
			Description: "Set up AWS accounts, VPC, and security groups",
			Status:      domain.TaskCompleted,
			StartDate:   days(-35),
			EndDate:     days(-20),
			Progress:    100,
			Priority:    domain.PriorityCritical,
			AssigneeID:  "res-6",
			CreatedAt:   days(-35),
			UpdatedAt:   days(-20),
		},
		{
			ID:          "task-3",
			ProjectID:   "proj-1",
			Name:        "Database Migration",
			Description: "Migrate PostgreSQL databases to AWS RDS",
			Status:      domain.TaskInProgress,
			StartDate:   days(-15),
			EndDate:     days(15),
			Progress:    60,
			Priority:    domain.PriorityHigh,
			AssigneeID:  "res-7",
			Dependencies: []domain.TaskDependency{
				{ID: "dep-1", TaskID: "task-3", DependsOnTaskID: "task-2", Type: domain.FinishToStart},
			},
			CreatedAt: days(-15),
			UpdatedAt: now,
		},
		{
			ID:          "task-4",
			ProjectID:   "proj-1",
			Name:        "Application Deployment",
			Description: "Deploy applications to ECS clusters",
			Status:      domain.TaskTodo,
			StartDate:   days(10),
			EndDate:     days(30),
			Progress:    0,
			Priority:    domain.PriorityHigh,
			AssigneeID:  "res-8",
			Dependencies: []domain.TaskDependency{
				{ID: "dep-2", TaskID: "task-4", DependsOnTaskID: "task-3", Type: domain.FinishToStart},
			},
			CreatedAt: days(-10),
			UpdatedAt: now,
		},
		{
			ID:          "task-5",
			ProjectID:   "proj-4",
			Name:        "Design System Creation",
			Description: "Create comprehensive design system with components",
			Status:      domain.TaskCompleted,
			StartDate:   days(-20),
			EndDate:     days(-5),
			Progress:    100,
			Priority:    domain.PriorityHigh,
			AssigneeID:  "res-9",
			CreatedAt:   days(-20),
			UpdatedAt:   days(-5),
		},
		{
			ID:          "task-6",
			ProjectID:   "proj-4",
			Name:        "UI Component Development",
			Description: "Build reusable UI components based on design system",
			Status:      domain.TaskInProgress,
			StartDate:   days(-5),
			EndDate:     days(15),
			Progress:    45,
			Priority:    domain.PriorityHigh,
			AssigneeID:  "res-10",
			Dependencies: []domain.TaskDependency{
				{ID: "dep-3", TaskID: "task-6", DependsOnTaskID: "task-5", Type: domain.FinishToStart},
			},
			CreatedAt: days(-5),
			UpdatedAt: now,
		},
	})

	st.SetResources([]domain.Resource{
		{ID: "res-1", Name: "김철수", Email: "cheolsu.kim@company.com", Role: "Program Manager", Department: "IT", Skills: []string{"Program Management", "Agile", "Stakeholder Management"}, Capacity: 80, HourlyRate: 150, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-2", Name: "이영희", Email: "younghee.lee@company.com", Role: "Tech Lead", Department: "Engineering", Skills: []string{"API Design", "Node.js", "AWS", "Kubernetes"}, Capacity: 100, HourlyRate: 120, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-3", Name: "박민수", Email: "minsu.park@company.com", Role: "Data Architect", Department: "Data", Skills: []string{"Data Engineering", "Python", "SQL", "AWS Redshift"}, Capacity: 90, HourlyRate: 130, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-4", Name: "최수진", Email: "sujin.choi@company.com", Role: "Product Manager", Department: "Product", Skills: []string{"Product Strategy", "UX Research", "Agile"}, Capacity: 85, HourlyRate: 125, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-5", Name: "정진우", Email: "jinwoo.jung@company.com", Role: "Project Manager", Department: "IT", Skills: []string{"Project Management", "Scrum", "Risk Management"}, Capacity: 75, HourlyRate: 115, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-6", Name: "강현준", Email: "hyunjun.kang@company.com", Role: "DevOps Engineer", Department: "Engineering", Skills: []string{"AWS", "Docker", "Kubernetes", "CI/CD"}, Capacity: 100, HourlyRate: 110, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-7", Name: "윤서연", Email: "seoyoon.yoon@company.com", Role: "Backend Developer", Department: "Engineering", Skills: []string{"Node.js", "PostgreSQL", "Redis", "AWS"}, Capacity: 95, HourlyRate: 105, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-8", Name: "오도현", Email: "dohyun.oh@company.com", Role: "Full Stack Developer", Department: "Engineering", Skills: []string{"React", "Node.js", "TypeScript", "Docker"}, Capacity: 90, HourlyRate: 108, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-9", Name: "신예린", Email: "yerin.shin@company.com", Role: "UI/UX Designer", Department: "Design", Skills: []string{"Figma", "UI Design", "Prototyping", "User Research"}, Capacity: 85, HourlyRate: 95, CreatedAt: days(-90), UpdatedAt: now},
		{ID: "res-10", Name: "한준호", Email: "junho.han@company.com", Role: "Frontend Developer", Department: "Engineering", Skills: []string{"React", "TypeScript", "CSS", "Storybook"}, Capacity: 100, HourlyRate: 102, CreatedAt: days(-90), UpdatedAt: now},
	})

	st.SetAllocations([]domain.ResourceAllocation{
		{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocationPercent: 40, StartDate: days(-45), EndDate: months(4), CreatedAt: days(-45), UpdatedAt: now},
		{ID: "alloc-2", ResourceID: "res-1", ProjectID: "proj-2", AllocationPercent: 30, StartDate: days(-30), EndDate: months(3), CreatedAt: days(-30), UpdatedAt: now},
		{ID: "alloc-3", ResourceID: "res-2", ProjectID: "proj-2", AllocationPercent: 60, StartDate: days(-30), EndDate: months(3), CreatedAt: days(-30), UpdatedAt: now},
		{ID: "alloc-4", ResourceID: "res-3", ProjectID: "proj-3", AllocationPercent: 50, StartDate: days(15), EndDate: months(5), CreatedAt: days(-15), UpdatedAt: now},
		{ID: "alloc-5", ResourceID: "res-4", ProjectID: "proj-4", AllocationPercent: 50, StartDate: days(-20), EndDate: months(4), CreatedAt: days(-20), UpdatedAt: now},
		{ID: "alloc-6", ResourceID: "res-6", ProjectID: "proj-1", AllocationPercent: 70, StartDate: days(-35), EndDate: days(30), CreatedAt: days(-35), UpdatedAt: now},
		{ID: "alloc-7", ResourceID: "res-7", ProjectID: "proj-1", AllocationPercent: 80, StartDate: days(-15), EndDate: days(15), CreatedAt: days(-15), UpdatedAt: now},
		{ID: "alloc-8", ResourceID: "res-8", ProjectID: "proj-1", AllocationPercent: 60, StartDate: days(10), EndDate: days(30), CreatedAt: days(-10), UpdatedAt: now},
		{ID: "alloc-9", ResourceID: "res-9", ProjectID: "proj-4", AllocationPercent: 65, StartDate: days(-20), EndDate: days(15), CreatedAt: days(-20), UpdatedAt: now},
		{ID: "alloc-10", ResourceID: "res-10", ProjectID: "proj-4", AllocationPercent: 75, StartDate: days(-5), EndDate: days(15), CreatedAt: days(-5), UpdatedAt: now},
	})

	st.SetBudgets([]domain.Budget{
		{ID: "budget-1", ProjectID: "proj-1", Category: "personnel", PlannedAmount: 450000, ActualAmount: 175000, FiscalYear: 2025, Quarter: 1, CreatedAt: days(-45), UpdatedAt: now},
		{ID: "budget-2", ProjectID: "proj-1", Category: "equipment", PlannedAmount: 250000, ActualAmount: 95000, FiscalYear: 2025, Quarter: 1, CreatedAt: days(-45), UpdatedAt: now},
		{ID: "budget-3", ProjectID: "proj-1", Category: "cloud-services", PlannedAmount: 150000, ActualAmount: 50000, FiscalYear: 2025, Quarter: 1, CreatedAt: days(-45), UpdatedAt: now},
		{ID: "budget-4", ProjectID: "proj-2", Category: "personnel", PlannedAmount: 280000, ActualAmount: 120000, FiscalYear: 2025, Quarter: 1, CreatedAt: days(-30), UpdatedAt: now},
		{ID: "budget-5", ProjectID: "proj-2", Category: "software-licenses", PlannedAmount: 140000, ActualAmount: 60000, FiscalYear: 2025, Quarter: 1, CreatedAt: days(-30), UpdatedAt: now},
	})

	st.SetRisks([]domain.Risk{
		{
			ID: "risk-1", ProjectID: "proj-1",
			Title:          "AWS Service Outage",
			Description:    "Potential AWS service outage could impact migrated applications",
			Probability:    domain.RatingLow,
			Impact:         domain.RatingHigh,
			MitigationPlan: "Implement multi-region deployment and disaster recovery procedures",
			Owner:          "res-6",
			Status:         domain.RiskOpen,
			IdentifiedDate: days(-40),
			DueDate:        ptr(days(30)),
			CreatedAt:      days(-40),
			UpdatedAt:      now,
		},
		{
			ID: "risk-2", ProjectID: "proj-1",
			Title:          "Data Loss During Migration",
			Description:    "Risk of data corruption or loss during database migration",
			Probability:    domain.RatingMedium,
			Impact:         domain.RatingHigh,
			MitigationPlan: "Implement comprehensive backup strategy and validation testing",
			Owner:          "res-7",
			Status:         domain.RiskMitigated,
			IdentifiedDate: days(-25),
			DueDate:        ptr(days(5)),
			CreatedAt:      days(-25),
			UpdatedAt:      now,
		},
		{
			ID: "risk-3", ProjectID: "proj-4",
			Title:          "Scope Creep",
			Description:    "Project scope expanding beyond original requirements",
			Probability:    domain.RatingHigh,
			Impact:         domain.RatingMedium,
			MitigationPlan: "Strict change management process and regular stakeholder reviews",
			Owner:          "res-4",
			Status:         domain.RiskOpen,
			IdentifiedDate: days(-15),
			DueDate:        ptr(days(20)),
			CreatedAt:      days(-15),
			UpdatedAt:      now,
		},
		{
			ID: "risk-4", ProjectID: "proj-2",
			Title:          "Third-Party API Compatibility",
			Description:    "Integration issues with third-party APIs through the gateway",
			Probability:    domain.RatingMedium,
			Impact:         domain.RatingMedium,
			MitigationPlan: "Early testing with all third-party providers and fallback mechanisms",
			Owner:          "res-2",
			Status:         domain.RiskOpen,
			IdentifiedDate: days(-20),
			DueDate:        ptr(days(25)),
			CreatedAt:      days(-20),
			UpdatedAt:      now,
		},
	})

	st.SetMilestones([]domain.Milestone{
		{ID: "milestone-1", ProjectID: "proj-1", Name: "Infrastructure Ready", Description: "AWS infrastructure fully provisioned and configured", Date: days(-20), Status: domain.MilestoneCompleted, CreatedAt: days(-45), UpdatedAt: days(-20)},
		{ID: "milestone-2", ProjectID: "proj-1", Name: "Database Migration Complete", Description: "All databases migrated to AWS RDS", Date: days(15), Status: domain.MilestonePending, CreatedAt: days(-45), UpdatedAt: now},
		{ID: "milestone-3", ProjectID: "proj-1", Name: "Production Go-Live", Description: "Applications live in production environment", Date: days(30), Status: domain.MilestonePending, CreatedAt: days(-45), UpdatedAt: now},
		{ID: "milestone-4", ProjectID: "proj-4", Name: "Design System Approved", Description: "Design system reviewed and approved by stakeholders", Date: days(-5), Status: domain.MilestoneCompleted, CreatedAt: days(-20), UpdatedAt: days(-5)},
		{ID: "milestone-5", ProjectID: "proj-4", Name: "Beta Release", Description: "Beta version released to select customers", Date: days(45), Status: domain.MilestonePending, CreatedAt: days(-20), UpdatedAt: now},
	})
}
