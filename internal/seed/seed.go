// Package seed loads the sample board used for local development and demos.
package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/domain/user"
)

// Summary reports what Run inserted.
type Summary struct {
	Users      int
	Tasks      int
	ByStatus   map[task.Status]int
	ByPriority map[task.Priority]int
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(s string) *string { return &s }

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// Users returns the sample members. user-4 has no wallet.
func Users() []user.User {
	mk := func(id, name, email, avatar string, wallet *string, role user.Role, created string) user.User {
		return user.User{
			ID:            id,
			Name:          name,
			Email:         ptr(email),
			Avatar:        ptr(avatar),
			WalletAddress: wallet,
			Role:          role,
			CreatedAt:     day(created),
			UpdatedAt:     day(created),
		}
	}
	return []user.User{
		mk("user-1", "John Doe", "john.doe@example.com", "https://picsum.photos/id/64/200/200",
			ptr("0x742d35Cc6639Cf532793a3c7b5F15e6e3e6e8e6a"), user.RoleManager, "2025-01-01"),
		mk("user-2", "Jane Smith", "jane.smith@example.com", "https://picsum.photos/id/91/200/200",
			ptr("0x8ba1f109551bD432803012645Hac136c34B3e8e6"), user.RoleMember, "2025-01-02"),
		mk("user-3", "Bob Johnson", "bob.johnson@example.com", "https://picsum.photos/id/177/200/200",
			ptr("0x123f109551bD432803012645Hac136c34B3e8e7"), user.RoleMember, "2025-01-03"),
		mk("user-4", "Alice Brown", "alice.brown@example.com", "https://picsum.photos/id/225/200/200",
			nil, user.RoleMember, "2025-01-04"),
		mk("user-5", "Charlie Wilson", "charlie.wilson@example.com", "https://picsum.photos/id/342/200/200",
			ptr("0x456f109551bD432803012645Hac136c34B3e8e8"), user.RoleMember, "2025-01-05"),
	}
}

// Tasks returns the sample board. Every task is created by user-1 except task-15.
func Tasks() []task.Task {
	mk := func(id, title, description string, status task.Status, priority task.Priority, due, created, updated string, assignee *string, creator string) task.Task {
		return task.Task{
			ID:          id,
			Title:       title,
			Description: description,
			Status:      status,
			Priority:    priority,
			DueDate:     dayPtr(due),
			CreatedAt:   day(created),
			UpdatedAt:   day(updated),
			AssigneeID:  assignee,
			CreatorID:   creator,
		}
	}
	return []task.Task{
		mk("task-1", "Design Task Board UI",
			"Create wireframes and mockups for the task board interface using Figma. Include responsive design considerations and user experience best practices.",
			task.StatusDone, task.PriorityHigh, "2025-06-05", "2025-06-01", "2025-06-04", ptr("user-4"), "user-1"),
		mk("task-2", "Setup Project Repository",
			"Initialize Next.js project with TypeScript, Tailwind CSS, and Prisma. Setup GitHub repository with proper branch protection rules.",
			task.StatusDone, task.PriorityHigh, "2025-06-03", "2025-06-01", "2025-06-02", ptr("user-2"), "user-1"),
		mk("task-3", "Create Database Schema",
			"Design and implement Prisma schema for users, tasks, and related entities. Include proper relationships and constraints.",
			task.StatusDone, task.PriorityMedium, "2025-06-04", "2025-06-02", "2025-06-03", ptr("user-3"), "user-1"),
		mk("task-4", "Implement Drag & Drop Functionality",
			"Add drag and drop functionality for task management using HTML5 drag API. Ensure smooth user experience and proper state management.",
			task.StatusInProgress, task.PriorityHigh, "2025-06-08", "2025-06-02", "2025-06-05", ptr("user-2"), "user-1"),
		mk("task-5", "Setup Web3 Integration",
			"Integrate Web3.js for blockchain functionality. Implement wallet connection, transaction handling, and user authentication via MetaMask.",
			task.StatusInProgress, task.PriorityMedium, "2025-06-10", "2025-06-03", "2025-06-05", ptr("user-3"), "user-1"),
		mk("task-6", "Implement Task Filtering & Search",
			"Add advanced filtering and search capabilities. Include filters by status, priority, assignee, and date ranges.",
			task.StatusInProgress, task.PriorityMedium, "2025-06-09", "2025-06-04", "2025-06-05", ptr("user-5"), "user-1"),
		mk("task-7", "Write Unit Tests",
			"Create comprehensive test cases using Jest and React Testing Library. Aim for at least 80% code coverage.",
			task.StatusTodo, task.PriorityMedium, "2025-06-12", "2025-06-03", "2025-06-03", ptr("user-4"), "user-1"),
		mk("task-8", "Implement User Authentication",
			"Add user authentication system with email/password and social login options. Include proper session management.",
			task.StatusTodo, task.PriorityHigh, "2025-06-11", "2025-06-04", "2025-06-04", ptr("user-2"), "user-1"),
		mk("task-9", "Setup CI/CD Pipeline",
			"Configure GitHub Actions for automated testing, building, and deployment. Include proper environment management.",
			task.StatusTodo, task.PriorityMedium, "2025-06-13", "2025-06-04", "2025-06-04", ptr("user-3"), "user-1"),
		mk("task-10", "Create Task Comments System",
			"Implement commenting functionality for tasks. Include real-time updates and notification system.",
			task.StatusTodo, task.PriorityLow, "2025-06-15", "2025-06-05", "2025-06-05", ptr("user-5"), "user-1"),
		mk("task-11", "Mobile Responsive Design",
			"Ensure the application works perfectly on mobile devices. Optimize touch interactions and mobile UX.",
			task.StatusTodo, task.PriorityMedium, "2025-06-14", "2025-06-05", "2025-06-05", ptr("user-4"), "user-1"),
		mk("task-12", "Performance Optimization",
			"Optimize application performance including bundle size, lazy loading, and database query optimization.",
			task.StatusTodo, task.PriorityLow, "2025-06-16", "2025-06-05", "2025-06-05", ptr("user-2"), "user-1"),
		mk("task-13", "Fix Critical Security Vulnerability",
			"Address the recently discovered XSS vulnerability in the task description rendering. This is blocking the production release.",
			task.StatusTodo, task.PriorityHigh, "2025-06-06", "2025-06-05", "2025-06-05", ptr("user-3"), "user-1"),
		mk("task-14", "Update Documentation",
			"Update README.md, API documentation, and deployment guides. Include screenshots and code examples.",
			task.StatusTodo, task.PriorityLow, "2025-06-18", "2025-06-05", "2025-06-05", nil, "user-1"),
		mk("task-15", "Implement Dark Mode",
			"Add dark mode support with proper theme switching and persistence. Ensure all components support both themes.",
			task.StatusTodo, task.PriorityLow, "2025-06-20", "2025-06-05", "2025-06-05", ptr("user-4"), "user-2"),
	}
}

// Run replaces every user and task with the sample board in one transaction.
func Run(ctx context.Context, db *gorm.DB) (*Summary, error) {
	users := Users()
	tasks := Tasks()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// tasks first, they reference users
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&task.Task{}).Error; err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&user.User{}).Error; err != nil {
			return fmt.Errorf("clear users: %w", err)
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("create users: %w", err)
		}
		if err := tx.Omit(clause.Associations).Create(&tasks).Error; err != nil {
			return fmt.Errorf("create tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Users:      len(users),
		Tasks:      len(tasks),
		ByStatus:   make(map[task.Status]int),
		ByPriority: make(map[task.Priority]int),
	}
	for _, t := range tasks {
		summary.ByStatus[t.Status]++
		summary.ByPriority[t.Priority]++
	}
	return summary, nil
}
