// Package docs holds the OpenAPI document served under /swagger. It is
// built from the handler annotations with: swag init -g cmd/server/main.go --v3.1
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
	"openapi": "3.1.0",
	"info": {
		"title": "{{.Title}}",
		"description": "{{.Description}}",
		"version": "{{.Version}}"
	},
	"servers": [
		{
			"url": "/api/v1"
		}
	],
	"paths": {
		"/catalog/products": {
			"post": {
				"summary": "Create a new product",
				"tags": [
					"products"
				],
				"responses": {
					"201": {
						"description": "Created",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"description": "Create a DRAFT product from a SKU, price and category",
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/catalog.CreateProductRequest"
							}
						}
					}
				}
			},
			"get": {
				"summary": "List products",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"type": "array",
													"items": {
														"$ref": "#/components/schemas/catalog.ProductResponse"
													}
												},
												"meta": {
													"$ref": "#/components/schemas/dto.Meta"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "search",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string"
						}
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string",
							"enum": [
								"DRAFT",
								"ACTIVE",
								"INACTIVE",
								"DISCONTINUED",
								"OUT_OF_STOCK"
							]
						}
					},
					{
						"name": "category_id",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"schema": {
							"type": "integer",
							"default": 1
						}
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"schema": {
							"type": "integer",
							"default": 20,
							"maximum": 100
						}
					},
					{
						"name": "order_by",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string",
							"default": "created_at"
						}
					},
					{
						"name": "order_dir",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string",
							"enum": [
								"asc",
								"desc"
							],
							"default": "desc"
						}
					}
				]
			}
		},
		"/catalog/products/{id}": {
			"get": {
				"summary": "Get product by ID",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/catalog/products/{id}/activate": {
			"post": {
				"summary": "Activate a product",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/catalog/products/{id}/deactivate": {
			"post": {
				"summary": "Deactivate a product",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/catalog/products/{id}/discontinue": {
			"post": {
				"summary": "Discontinue a product",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/catalog/products/{id}/price": {
			"put": {
				"summary": "Change a product's price",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/catalog.UpdatePriceRequest"
							}
						}
					}
				}
			}
		},
		"/catalog/products/{id}/images": {
			"post": {
				"summary": "Add an image by URL",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/catalog.AddImageRequest"
							}
						}
					}
				}
			}
		},
		"/catalog/products/{id}/images/upload": {
			"post": {
				"summary": "Upload an image file",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"requestBody": {
					"required": true,
					"content": {
						"multipart/form-data": {
							"schema": {
								"type": "object",
								"required": [
									"file"
								],
								"properties": {
									"file": {
										"type": "string",
										"format": "binary"
									}
								}
							}
						}
					}
				}
			}
		},
		"/catalog/products/{id}/specifications": {
			"post": {
				"summary": "Add a specification",
				"tags": [
					"products"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/catalog.ProductResponse"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"409": {
						"description": "Conflict",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				],
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/catalog.AddSpecificationRequest"
							}
						}
					}
				}
			}
		},
		"/admin/outbox/stats": {
			"get": {
				"summary": "Outbox entry counts per status",
				"tags": [
					"outbox"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/event.OutboxStatsDTO"
												}
											}
										}
									]
								}
							}
						}
					}
				}
			}
		},
		"/admin/outbox/dead": {
			"get": {
				"summary": "List dead outbox entries",
				"tags": [
					"outbox"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"type": "array",
													"items": {
														"$ref": "#/components/schemas/event.OutboxEntryDTO"
													}
												},
												"meta": {
													"$ref": "#/components/schemas/dto.Meta"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"schema": {
							"type": "integer",
							"default": 1
						}
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"schema": {
							"type": "integer",
							"default": 20,
							"maximum": 100
						}
					}
				]
			}
		},
		"/admin/outbox/dead/retry": {
			"post": {
				"summary": "Requeue every dead outbox entry",
				"tags": [
					"outbox"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"type": "object",
													"properties": {
														"requeued": {
															"type": "integer"
														}
													}
												}
											}
										}
									]
								}
							}
						}
					}
				}
			}
		},
		"/admin/outbox/{id}": {
			"get": {
				"summary": "Get outbox entry",
				"tags": [
					"outbox"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/event.OutboxEntryDTO"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		},
		"/admin/outbox/{id}/retry": {
			"post": {
				"summary": "Requeue a dead outbox entry",
				"tags": [
					"outbox"
				],
				"responses": {
					"200": {
						"description": "OK",
						"content": {
							"application/json": {
								"schema": {
									"allOf": [
										{
											"$ref": "#/components/schemas/dto.Response"
										},
										{
											"type": "object",
											"properties": {
												"data": {
													"$ref": "#/components/schemas/event.OutboxEntryDTO"
												}
											}
										}
									]
								}
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"404": {
						"description": "Not Found",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dto.Response"
								}
							}
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string",
							"format": "uuid"
						}
					}
				]
			}
		}
	},
	"components": {
		"schemas": {
			"catalog.MoneyDTO": {
				"type": "object",
				"required": [
					"amount",
					"currency"
				],
				"properties": {
					"amount": {
						"type": "string",
						"example": "49.90"
					},
					"currency": {
						"type": "string",
						"example": "USD"
					}
				}
			},
			"catalog.SpecificationDTO": {
				"type": "object",
				"required": [
					"name",
					"value"
				],
				"properties": {
					"name": {
						"type": "string"
					},
					"value": {
						"type": "string"
					}
				}
			},
			"catalog.SkuResponse": {
				"type": "object",
				"properties": {
					"code": {
						"type": "string",
						"example": "NIKSHRTLGBLU001351"
					},
					"brand": {
						"type": "string"
					},
					"product_type": {
						"type": "string"
					},
					"size": {
						"type": "string"
					},
					"color": {
						"type": "string"
					},
					"unique_id": {
						"type": "string"
					},
					"location": {
						"type": "string"
					}
				}
			},
			"catalog.ProductResponse": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"sku": {
						"$ref": "#/components/schemas/catalog.SkuResponse"
					},
					"name": {
						"type": "string"
					},
					"description": {
						"type": "string"
					},
					"category_id": {
						"type": "string",
						"format": "uuid"
					},
					"price": {
						"$ref": "#/components/schemas/catalog.MoneyDTO"
					},
					"status": {
						"type": "string"
					},
					"images": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"specifications": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/catalog.SpecificationDTO"
						}
					},
					"created_at": {
						"type": "string",
						"format": "date-time"
					},
					"updated_at": {
						"type": "string",
						"format": "date-time"
					},
					"version": {
						"type": "integer"
					}
				}
			},
			"catalog.CreateProductRequest": {
				"type": "object",
				"required": [
					"sku",
					"name",
					"description",
					"category_id",
					"price"
				],
				"properties": {
					"sku": {
						"type": "string",
						"example": "NIKSHRTLGBLU001351"
					},
					"name": {
						"type": "string",
						"maxLength": 200
					},
					"description": {
						"type": "string",
						"maxLength": 2000
					},
					"category_id": {
						"type": "string",
						"format": "uuid"
					},
					"price": {
						"$ref": "#/components/schemas/catalog.MoneyDTO"
					},
					"images": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"specifications": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/catalog.SpecificationDTO"
						}
					}
				}
			},
			"catalog.UpdatePriceRequest": {
				"type": "object",
				"required": [
					"price"
				],
				"properties": {
					"price": {
						"$ref": "#/components/schemas/catalog.MoneyDTO"
					}
				}
			},
			"catalog.AddImageRequest": {
				"type": "object",
				"required": [
					"url"
				],
				"properties": {
					"url": {
						"type": "string",
						"format": "uri"
					}
				}
			},
			"catalog.AddSpecificationRequest": {
				"type": "object",
				"required": [
					"name",
					"value"
				],
				"properties": {
					"name": {
						"type": "string"
					},
					"value": {
						"type": "string"
					}
				}
			},
			"event.OutboxEntryDTO": {
				"type": "object",
				"properties": {
					"id": {
						"type": "string",
						"format": "uuid"
					},
					"event_id": {
						"type": "string",
						"format": "uuid"
					},
					"event_type": {
						"type": "string"
					},
					"aggregate_id": {
						"type": "string",
						"format": "uuid"
					},
					"aggregate_type": {
						"type": "string"
					},
					"status": {
						"type": "string"
					},
					"retry_count": {
						"type": "integer"
					},
					"max_retries": {
						"type": "integer"
					},
					"last_error": {
						"type": "string"
					},
					"next_retry_at": {
						"type": "string",
						"format": "date-time"
					},
					"processed_at": {
						"type": "string",
						"format": "date-time"
					},
					"created_at": {
						"type": "string",
						"format": "date-time"
					},
					"updated_at": {
						"type": "string",
						"format": "date-time"
					}
				}
			},
			"event.OutboxStatsDTO": {
				"type": "object",
				"properties": {
					"pending": {
						"type": "integer"
					},
					"processing": {
						"type": "integer"
					},
					"sent": {
						"type": "integer"
					},
					"failed": {
						"type": "integer"
					},
					"dead": {
						"type": "integer"
					},
					"total": {
						"type": "integer"
					}
				}
			},
			"dto.ValidationDetail": {
				"type": "object",
				"properties": {
					"field": {
						"type": "string"
					},
					"message": {
						"type": "string"
					}
				}
			},
			"dto.ErrorInfo": {
				"type": "object",
				"properties": {
					"code": {
						"type": "string"
					},
					"message": {
						"type": "string"
					},
					"request_id": {
						"type": "string"
					},
					"details": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/dto.ValidationDetail"
						}
					}
				}
			},
			"dto.Meta": {
				"type": "object",
				"properties": {
					"total": {
						"type": "integer"
					},
					"page": {
						"type": "integer"
					},
					"page_size": {
						"type": "integer"
					},
					"total_pages": {
						"type": "integer"
					}
				}
			},
			"dto.Response": {
				"type": "object",
				"properties": {
					"success": {
						"type": "boolean"
					},
					"data": {},
					"error": {
						"$ref": "#/components/schemas/dto.ErrorInfo"
					},
					"meta": {
						"$ref": "#/components/schemas/dto.Meta"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Catalog API",
	Description:      "Product catalog service: SKUs, prices, images and the product lifecycle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
