// Package api defines the command service the daemon exposes to the front
// end and the CLI.
package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "overlearn.v1.CommandService"

// Method names, as used in gRPC paths and by the invoke endpoint table.
const (
	MethodGreet                    = "Greet"
	MethodShowNotification         = "ShowNotification"
	MethodShowNativeNotification   = "ShowNativeNotification"
	MethodNotifyPomodoroComplete   = "NotifyPomodoroComplete"
	MethodNotifyStudyGoalMilestone = "NotifyStudyGoalMilestone"
	MethodGetAppVersion            = "GetAppVersion"
	MethodShowWindow               = "ShowWindow"
	MethodHideWindow               = "HideWindow"
	MethodGetStatus                = "GetStatus"
	MethodShutdown                 = "Shutdown"
)

// FullMethod returns the gRPC path for a method name.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CommandServiceServer is the server interface for CommandService.
type CommandServiceServer interface {
	Greet(context.Context, *GreetRequest) (*GreetResponse, error)
	ShowNotification(context.Context, *ShowNotificationRequest) (*emptypb.Empty, error)
	ShowNativeNotification(context.Context, *ShowNativeNotificationRequest) (*emptypb.Empty, error)
	NotifyPomodoroComplete(context.Context, *NotifyPomodoroCompleteRequest) (*emptypb.Empty, error)
	NotifyStudyGoalMilestone(context.Context, *NotifyStudyGoalMilestoneRequest) (*emptypb.Empty, error)
	GetAppVersion(context.Context, *emptypb.Empty) (*AppVersion, error)
	ShowWindow(context.Context, *emptypb.Empty) (*WindowState, error)
	HideWindow(context.Context, *emptypb.Empty) (*WindowState, error)
	GetStatus(context.Context, *emptypb.Empty) (*DaemonStatus, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// RegisterCommandServiceServer registers srv with the gRPC server.
func RegisterCommandServiceServer(s grpc.ServiceRegistrar, srv CommandServiceServer) {
	s.RegisterService(&CommandServiceDesc, srv)
}

// unaryHandler adapts a typed service method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](method string, call func(CommandServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CommandServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CommandServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CommandServiceDesc describes CommandService for grpc.Server.
var CommandServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CommandServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodGreet,
			Handler:    unaryHandler(MethodGreet, CommandServiceServer.Greet),
		},
		{
			MethodName: MethodShowNotification,
			Handler:    unaryHandler(MethodShowNotification, CommandServiceServer.ShowNotification),
		},
		{
			MethodName: MethodShowNativeNotification,
			Handler:    unaryHandler(MethodShowNativeNotification, CommandServiceServer.ShowNativeNotification),
		},
		{
			MethodName: MethodNotifyPomodoroComplete,
			Handler:    unaryHandler(MethodNotifyPomodoroComplete, CommandServiceServer.NotifyPomodoroComplete),
		},
		{
			MethodName: MethodNotifyStudyGoalMilestone,
			Handler:    unaryHandler(MethodNotifyStudyGoalMilestone, CommandServiceServer.NotifyStudyGoalMilestone),
		},
		{
			MethodName: MethodGetAppVersion,
			Handler:    unaryHandler(MethodGetAppVersion, CommandServiceServer.GetAppVersion),
		},
		{
			MethodName: MethodShowWindow,
			Handler:    unaryHandler(MethodShowWindow, CommandServiceServer.ShowWindow),
		},
		{
			MethodName: MethodHideWindow,
			Handler:    unaryHandler(MethodHideWindow, CommandServiceServer.HideWindow),
		},
		{
			MethodName: MethodGetStatus,
			Handler:    unaryHandler(MethodGetStatus, CommandServiceServer.GetStatus),
		},
		{
			MethodName: MethodShutdown,
			Handler:    unaryHandler(MethodShutdown, CommandServiceServer.Shutdown),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "overlearn/v1/command.proto",
}
