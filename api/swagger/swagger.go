package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Ders Programı API",
        "description": "Weekly timetable scheduling and conflict validation for K-12 schools",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teachers", "description": "Teacher roster management"},
        {"name": "Classes", "description": "Class roster management"},
        {"name": "Subjects", "description": "Subject catalogue management"},
        {"name": "Timetables", "description": "Timetable persistence, validation and projections"},
        {"name": "Generator", "description": "Automatic timetable generation"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "branch", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"},
                    {"name": "sort_by", "in": "query", "type": "string"},
                    {"name": "sort_order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Teacher list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Teacher"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Name already used"}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Teachers"],
                "summary": "Update teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Teacher"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Teachers"],
                "summary": "Delete teacher and their timetable",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Class list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Class"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/classes/{id}": {
            "get": {
                "tags": ["Classes"],
                "summary": "Get class with homeroom teacher",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Class detail", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Classes"],
                "summary": "Update class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Class"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete class",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "branch", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Subject list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Subject"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/{id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Get subject",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Subject", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Subjects"],
                "summary": "Update subject",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Subject"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/timetables": {
            "get": {
                "tags": ["Timetables"],
                "summary": "List all stored timetables",
                "responses": {
                    "200": {"description": "Timetable list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetables/teachers/{id}": {
            "get": {
                "tags": ["Timetables"],
                "summary": "Get one teacher's timetable with fixed periods merged",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Teacher not found"}
                }
            },
            "put": {
                "tags": ["Timetables"],
                "summary": "Save one teacher's timetable",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TimetableSave"}}
                ],
                "responses": {
                    "200": {"description": "Saved with validation result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Validation failed with conflicts"}
                }
            },
            "delete": {
                "tags": ["Timetables"],
                "summary": "Delete one teacher's timetable",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/timetables/teachers/{id}/export": {
            "get": {
                "tags": ["Timetables"],
                "summary": "Export one teacher's timetable as CSV",
                "produces": ["text/csv"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "CSV content"},
                    "404": {"description": "Teacher not found"}
                }
            }
        },
        "/timetables/classes/{id}": {
            "get": {
                "tags": ["Timetables"],
                "summary": "Projected weekly grid of one class",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Class view", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Class not found"}
                }
            },
            "put": {
                "tags": ["Timetables"],
                "summary": "Save one class's timetable across teacher grids",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TimetableSave"}}
                ],
                "responses": {
                    "200": {"description": "Saved with validation result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Validation failed with conflicts"}
                }
            }
        },
        "/timetables/check-slot": {
            "get": {
                "tags": ["Timetables"],
                "summary": "Check a single slot for conflicts",
                "parameters": [
                    {"name": "mode", "in": "query", "required": true, "type": "string", "enum": ["teacher", "class"]},
                    {"name": "day", "in": "query", "required": true, "type": "string"},
                    {"name": "period", "in": "query", "required": true, "type": "string"},
                    {"name": "targetId", "in": "query", "type": "string"},
                    {"name": "currentEntityId", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Conflict check result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetables/timeplan": {
            "get": {
                "tags": ["Timetables"],
                "summary": "Clock-time table for a level",
                "parameters": [
                    {"name": "level", "in": "query", "type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]}
                ],
                "responses": {
                    "200": {"description": "Time plan", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetables/bulk-delete": {
            "post": {
                "tags": ["Timetables"],
                "summary": "Delete timetables by teacher or class scope",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkDelete"}}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/generator/generate": {
            "post": {
                "tags": ["Generator"],
                "summary": "Auto-generate timetables for the whole roster",
                "parameters": [
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/GeneratorOptions"}}
                ],
                "responses": {
                    "200": {"description": "Best-effort generation result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/generator/apply": {
            "post": {
                "tags": ["Generator"],
                "summary": "Persist a reviewed generation result",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                ],
                "responses": {
                    "200": {"description": "Apply summary", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Teacher": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "branch": {"type": "string"},
                "level": {"type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]},
                "active": {"type": "boolean"}
            }
        },
        "Class": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "level": {"type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]},
                "teacherId": {"type": "string"}
            }
        },
        "Subject": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "branch": {"type": "string"},
                "level": {"type": "string", "enum": ["Anaokulu", "İlkokul", "Ortaokul"]},
                "weeklyHours": {"type": "integer"}
            }
        },
        "TimetableSave": {
            "type": "object",
            "properties": {
                "schedule": {"type": "object", "description": "day -> period -> slot grid"}
            }
        },
        "BulkDelete": {
            "type": "object",
            "properties": {
                "teacherIds": {"type": "array", "items": {"type": "string"}},
                "classIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "GeneratorOptions": {
            "type": "object",
            "properties": {
                "maxDailyHours": {"type": "integer"},
                "mode": {"type": "string", "enum": ["balanced", "compact", "spread"]},
                "avoidConsecutive": {"type": "boolean"},
                "prioritizeCore": {"type": "boolean"},
                "respectTimeSlots": {"type": "boolean"},
                "preferMorningHours": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
