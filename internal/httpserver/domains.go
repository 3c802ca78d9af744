package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"complaint-management/internal/issue"
	"complaint-management/internal/middleware"

	complaintHTTP "complaint-management/internal/complaint/delivery/http"
	complaintRepo "complaint-management/internal/complaint/repository/sqlstore"
	complaintUC "complaint-management/internal/complaint/usecase"
	departmentHTTP "complaint-management/internal/department/delivery/http"
	departmentRepo "complaint-management/internal/department/repository/sqlstore"
	departmentUC "complaint-management/internal/department/usecase"
	issueHTTP "complaint-management/internal/issue/delivery/http"
	issueRepo "complaint-management/internal/issue/repository/sqlstore"
	issueUCPkg "complaint-management/internal/issue/usecase"
	roleHTTP "complaint-management/internal/role/delivery/http"
	roleRepo "complaint-management/internal/role/repository/sqlstore"
	roleUC "complaint-management/internal/role/usecase"
	serviceTypeHTTP "complaint-management/internal/servicetype/delivery/http"
	serviceTypeRepo "complaint-management/internal/servicetype/repository/sqlstore"
	serviceTypeUC "complaint-management/internal/servicetype/usecase"
	userHTTP "complaint-management/internal/user/delivery/http"
	userRepo "complaint-management/internal/user/repository/sqlstore"
	userUC "complaint-management/internal/user/usecase"
)

// Every domain follows the same wiring:
//  1. Repository:   repo := xRepo.New(srv.db, srv.dialect, srv.l)
//  2. UseCase:      uc := xUC.New(repo, srv.l)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(api, h, mw)

func (srv HTTPServer) setupRoleDomain(ctx context.Context, api *gin.RouterGroup) {
	repo := roleRepo.New(srv.db, srv.dialect, srv.l)
	uc := roleUC.New(repo, srv.l)
	roleHTTP.RegisterRoutes(api, roleHTTP.New(srv.l, uc))
	srv.l.Infof(ctx, "Role domain registered")
}

func (srv HTTPServer) setupDepartmentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := departmentRepo.New(srv.db, srv.dialect, srv.l)
	uc := departmentUC.New(repo, srv.l)
	departmentHTTP.RegisterRoutes(api, departmentHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Department domain registered")
}

// setupIssueDomain returns the issue use case; service types validate their
// issue through it.
func (srv HTTPServer) setupIssueDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) issue.UseCase {
	repo := issueRepo.New(srv.db, srv.dialect, srv.l)
	uc := issueUCPkg.New(repo, srv.l)
	issueHTTP.RegisterRoutes(api, issueHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Issue domain registered")
	return uc
}

func (srv HTTPServer) setupServiceTypeDomain(ctx context.Context, api *gin.RouterGroup, issueUC issue.UseCase) {
	repo := serviceTypeRepo.New(srv.db, srv.dialect, srv.l)
	uc := serviceTypeUC.New(repo, issueUC, srv.l)
	serviceTypeHTTP.RegisterRoutes(api, serviceTypeHTTP.New(srv.l, uc))
	srv.l.Infof(ctx, "Service type domain registered")
}

func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userRepo.New(srv.db, srv.dialect, srv.l)
	uc := userUC.New(repo, srv.encrypter, srv.jwtManager, srv.l)
	h := userHTTP.New(srv.l, uc, userHTTP.CookieConfig{
		Secure: srv.cookie.Secure,
		Domain: srv.cookie.Domain,
		MaxAge: srv.cookie.MaxAge,
	})
	loginLimit := mw.RateLimit(srv.rateLimit.LoginPerMinute, srv.rateLimit.Burst, srv.rateLimit.MaxClients)
	userHTTP.RegisterRoutes(api, h, mw, loginLimit)
	srv.l.Infof(ctx, "User domain registered, login limited to %d/min", srv.rateLimit.LoginPerMinute)
}

func (srv HTTPServer) setupComplaintDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := complaintRepo.New(srv.db, srv.dialect, srv.l)
	uc := complaintUC.New(repo, srv.l)
	complaintHTTP.RegisterRoutes(api, complaintHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Complaint domain registered")
}
